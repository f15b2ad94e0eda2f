package internal

import (
	"os"
	"path/filepath"
)

type ScopeType string

const (
	ScopeGlobal  ScopeType = "global"
	ScopeProject ScopeType = "project"
)

// Scope is the directory a session lives in: global (~/.halo) or the nearest
// project .halo directory.
type Scope struct {
	Type     ScopeType
	Path     string // working directory root
	HaloPath string // .halo directory path
}

func (s Scope) ConfigPath() string {
	return filepath.Join(s.HaloPath, "config.yaml")
}

func (s Scope) SessionPath() string {
	return filepath.Join(s.HaloPath, "session.json")
}

func (s Scope) ArchivePath() string {
	return filepath.Join(s.HaloPath, "archive")
}

func (s Scope) ConstitutionPath() string {
	return filepath.Join(s.HaloPath, "constitution.md")
}

type ScopeResolver struct {
	homeDir string
}

func NewScopeResolver() *ScopeResolver {
	home, _ := os.UserHomeDir()
	return &ScopeResolver{homeDir: home}
}

func (r *ScopeResolver) Global() Scope {
	haloPath := filepath.Join(r.homeDir, ".halo")
	return Scope{
		Type:     ScopeGlobal,
		Path:     r.homeDir,
		HaloPath: haloPath,
	}
}

func (r *ScopeResolver) Project() (Scope, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return Scope{}, false
	}
	return r.findProjectScope(cwd)
}

func (r *ScopeResolver) findProjectScope(dir string) (Scope, bool) {
	for {
		haloPath := filepath.Join(dir, ".halo")
		info, err := os.Stat(haloPath)
		if err == nil && info.IsDir() {
			return Scope{Type: ScopeProject, Path: dir, HaloPath: haloPath}, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Scope{}, false
		}
		dir = parent
	}
}

func (r *ScopeResolver) Resolve(explicit string) Scope {
	if explicit == "global" {
		return r.Global()
	}
	if scope, ok := r.Project(); ok {
		return scope
	}
	return r.Global()
}
