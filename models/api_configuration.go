package models

// APIConfiguration is the content of the API configuration panel.
//
// APIKey is never serialised: it is persisted only through the secret vault.
// The remaining fields are not secret and are stored as plain JSON.
type APIConfiguration struct {
	APIKey           string `json:"-"`
	DocumentationURL string `json:"documentation_url"`
	TestEndpoint     string `json:"test_endpoint"`
}
