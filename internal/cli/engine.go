package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/textgrain/spell/internal/config"
	"github.com/textgrain/spell/pkg/spell"
)

var errMissingPrimary = errors.New("no primary dictionary configured")

// resolveProfilePaths makes every relative dictionary path in profile
// absolute against workDir, the same way the teacher resolves
// TicketDirAbs relative to the effective cwd.
func resolveProfilePaths(profile config.Profile, workDir string) config.Profile {
	resolve := func(path string) string {
		if path == "" || filepath.IsAbs(path) {
			return path
		}

		return filepath.Join(workDir, path)
	}

	profile.Primary = resolve(profile.Primary)
	profile.Transcription = resolve(profile.Transcription)
	profile.Personal = resolve(profile.Personal)

	for i, s := range profile.Supplemental {
		profile.Supplemental[i] = resolve(s)
	}

	return profile
}

// loadEngine builds an Engine from profile: it opens the primary
// dictionary and transcription rules, then assimilates every
// supplemental dictionary and the personal dictionary (if configured)
// as further dictionary file slots.
func loadEngine(profile config.Profile) (*spell.Engine, error) {
	if profile.Primary == "" {
		return nil, errMissingPrimary
	}

	var flags spell.Flags

	if profile.ExpandPrecomposed {
		flags |= spell.ExpandPrecomposed
	}

	if profile.UpperLower {
		flags |= spell.UpperLower
	}

	if profile.HasCompounds {
		flags |= spell.HasCompounds
	}

	if profile.HasComposition {
		flags |= spell.HasComposition
	}

	engine, err := spell.New(profile.Primary, profile.Transcription, flags)
	if err != nil {
		return nil, err
	}

	for _, supplemental := range profile.Supplemental {
		if err := engine.Assimilate(supplemental); err != nil {
			_ = engine.Close()

			return nil, fmt.Errorf("assimilating %s: %w", supplemental, err)
		}
	}

	if profile.Personal != "" {
		if err := assimilateOptional(engine, profile.Personal); err != nil {
			_ = engine.Close()

			return nil, err
		}
	}

	return engine, nil
}

// assimilateOptional assimilates path if it exists; a personal
// dictionary that has never been written to yet is not an error.
func assimilateOptional(engine *spell.Engine, path string) error {
	if err := engine.Assimilate(path); err != nil {
		if errors.Is(err, spell.ErrNoSuchFile) {
			return nil
		}

		return fmt.Errorf("assimilating personal dictionary %s: %w", path, err)
	}

	return nil
}
