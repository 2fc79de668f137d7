package collision

type ObstacleSource int

const (
	SourceNone ObstacleSource = iota
	SourceExternal
	SourceOnboard
)

func (s ObstacleSource) String() string {
	switch s {
	case SourceExternal:
		return "external"
	case SourceOnboard:
		return "onboard"
	default:
		return "none"
	}
}

// SelectProfile prefers an external fused profile that arrived this cycle and
// otherwise builds one from the onboard sensors. The two are never merged.
func SelectProfile(external DistanceProfile, externalUpdated bool, build func() DistanceProfile) (DistanceProfile, ObstacleSource) {
	if externalUpdated {
		return external, SourceExternal
	}
	return build(), SourceOnboard
}
