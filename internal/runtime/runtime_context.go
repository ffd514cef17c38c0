package runtime

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/fhe-forge/fheforge/internal/manifest"
	"github.com/fhe-forge/fheforge/internal/registry"
)

// Context carries the shared dependencies every command constructor receives.
// The registry is attached once at startup and treated as read-only afterwards.
type Context struct {
	Logger   *zerolog.Logger
	Viper    *viper.Viper
	Registry *registry.Registry
}

func NewContext(logger *zerolog.Logger, viper *viper.Viper) *Context {
	return &Context{
		Logger: logger,
		Viper:  viper,
	}
}

// AttachRegistry builds the example registry from the built-in descriptors,
// merged with the manifest at manifestPath when one is given. When no path is
// given but a fheforge.yaml exists in the working directory, it is picked up
// automatically.
func (ctx *Context) AttachRegistry(manifestPath string) error {
	reg := registry.Default()

	implicit := false
	if manifestPath == "" {
		if _, err := os.Stat("fheforge.yaml"); err == nil {
			manifestPath = "fheforge.yaml"
			implicit = true
		}
	}

	if manifestPath != "" {
		extra, err := manifest.Load(manifestPath)
		if err != nil {
			if implicit {
				// A broken manifest the user never asked for must not take
				// the whole CLI down.
				ctx.Logger.Warn().Err(err).Msgf("Ignoring manifest %s", manifestPath)
				ctx.Registry = reg
				return nil
			}
			return fmt.Errorf("failed to load manifest: %w", err)
		}

		reg, err = reg.Merge(extra...)
		if err != nil {
			return fmt.Errorf("failed to merge manifest %s: %w", manifestPath, err)
		}
		ctx.Logger.Debug().Msgf("Merged %d example(s) from %s", len(extra), manifestPath)
	}

	ctx.Registry = reg
	return nil
}
