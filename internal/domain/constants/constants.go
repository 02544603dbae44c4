// Package constants holds string values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Notification source types, one per kind of primary write that fans out.
const (
	SourceTypeMessage     = "message"
	SourceTypeAppointment = "appointment"
	SourceTypeReminder    = "reminder"
)

// NotificationListLimit caps the notification list response.
const NotificationListLimit = 20
