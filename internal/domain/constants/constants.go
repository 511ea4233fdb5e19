// Package constants holds shared domain constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)

// DefaultPlatformFeeRate is the marketplace's cut of a purchase when the
// configuration does not override it.
const DefaultPlatformFeeRate = 0.10

const (
	// EnvDevelop marks a local development deployment.
	EnvDevelop = "develop"
	// EnvProduction marks a production deployment.
	EnvProduction = "production"
)
