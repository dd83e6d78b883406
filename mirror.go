package portal

// MirrorProvider produces a live visual proxy of already-mounted view
// content, for single-instance-shared-across-two-locations scenarios.
// Hosts with a native mirroring capability implement it alongside
// Host; everyone else gets the duplicate-content fallback from
// ProbeMirror.
type MirrorProvider interface {
	// Available reports whether live mirroring is actually supported
	// at runtime, so calling code can branch.
	Available() bool

	// Mirror returns a proxy for content. With a real capability the
	// proxy renders the live instance; the fallback renders an
	// independent duplicate.
	Mirror(content any) any
}

// ProbeMirror resolves the mirroring capability for a host at runtime.
// Never a compile-time assumption: a host that implements
// MirrorProvider but reports unavailable also gets the fallback.
func ProbeMirror(host Host) MirrorProvider {
	if mp, ok := host.(MirrorProvider); ok && mp.Available() {
		return mp
	}
	return duplicateProvider{}
}

// duplicateProvider is the graceful fallback: the floating layer
// renders its own copy of the content instead of mirroring the live
// view. Nil content maps to a transparent placeholder rather than
// crashing.
type duplicateProvider struct{}

func (duplicateProvider) Available() bool {
	return false
}

func (duplicateProvider) Mirror(content any) any {
	if content == nil {
		return Placeholder{}
	}
	return content
}

// Placeholder is the transparent stand-in rendered when mirrored
// content cannot be produced. Hosts should draw nothing for it.
type Placeholder struct{}
