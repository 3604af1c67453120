package config

// Config is the deployment configuration of the gateway.
type Config struct {
	AppID     string     `yaml:"appId"`     // integration identifier (e.g. "jira")
	JWT       JWT        `yaml:"jwt"`       // signed-token verification settings
	Consumers []Consumer `yaml:"consumers"` // OAuth1 consumers, one per JIRA deployment
}

// JWT configures verification of the platform's signed tokens.
type JWT struct {
	Secret string `yaml:"secret"` // supports env:/file: indirection
}

// Consumer is the OAuth1 application key registered for one JIRA base URL.
// Either ConsumerSecret (HMAC-SHA1) or PrivateKey (RSA-SHA1, PEM) must be
// set. Secret-ish fields support env:/file: indirection.
type Consumer struct {
	URL            string `yaml:"url"`
	ConsumerKey    string `yaml:"consumerKey"`
	ConsumerSecret string `yaml:"consumerSecret,omitempty"`
	PrivateKey     string `yaml:"privateKey,omitempty"`
}
