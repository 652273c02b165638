package component

// PowerUp marks a falling pickup granting the corresponding buff
type PowerUp struct {
	Kind BuffKind
}
