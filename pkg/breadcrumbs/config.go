package breadcrumbs

import "github.com/mesh-intelligence/breadcrumbs/pkg/types"

// ResolveConfig merges config layers, highest priority first: a per-call
// override such as a flag or query parameter, then the configured
// settings. Each field takes the first layer that sets it; Prefix falls
// back to types.DefaultPrefix and TrailingSlash stays nil when no layer
// sets it.
func ResolveConfig(layers ...types.Config) types.Config {
	var cfg types.Config
	for _, l := range layers {
		if cfg.Prefix == "" {
			cfg.Prefix = l.Prefix
		}
		if cfg.TrailingSlash == nil && l.TrailingSlash != nil {
			v := *l.TrailingSlash
			cfg.TrailingSlash = &v
		}
	}
	if cfg.Prefix == "" {
		cfg.Prefix = types.DefaultPrefix
	}
	return cfg
}

// ComponentName returns the name a host registers the trail component
// under.
func ComponentName(cfg types.Config) string {
	return prefixOf(cfg) + "Breadcrumbs"
}

// ComposableName returns the name a host exposes the trail accessor under.
func ComposableName(cfg types.Config) string {
	return "use" + prefixOf(cfg) + "Breadcrumbs"
}

func prefixOf(cfg types.Config) string {
	if cfg.Prefix == "" {
		return types.DefaultPrefix
	}
	return cfg.Prefix
}
