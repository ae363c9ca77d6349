package entity

// City is a municipality identified by its IBGE code.
type City struct {
	IBGE int    `json:"ibge"`          // Civil-registry code, positive and unique.
	Name string `json:"name"`          // Display name.
	DDD  *int   `json:"ddd,omitempty"` // Two-digit telephone area code, when known.
}
