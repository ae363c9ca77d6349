package entity

const (
	// ProviderLocal tags results served from local storage.
	ProviderLocal = "local"
	// ProviderNone tags an empty result after every external provider failed or missed.
	ProviderNone = "none"
)
