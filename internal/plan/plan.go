// Package plan describes filesystem side effects as an ordered list of
// operations that can be inspected before they are executed.
package plan

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"specprep/internal/fsops"
)

// Kind identifies what an Op does
type Kind string

const (
	KindEnsureDir Kind = "ensure-dir"
	KindCopyFile  Kind = "copy-file"
	KindWriteFile Kind = "write-file"
)

// Op is a single pending filesystem operation
type Op struct {
	Kind     Kind   `yaml:"kind"`
	Source   string `yaml:"source,omitempty"`
	Target   string `yaml:"target"`
	Contents []byte `yaml:"-"`
}

// Plan is an ordered list of operations. Executing it performs each op in
// order and stops at the first failure.
type Plan []Op

// EnsureDir returns an op that provisions a single directory level
func EnsureDir(path string) Op {
	return Op{Kind: KindEnsureDir, Target: path}
}

// CopyFile returns an op that copies src to dst
func CopyFile(src, dst string) Op {
	return Op{Kind: KindCopyFile, Source: src, Target: dst}
}

// WriteFile returns an op that writes contents to path
func WriteFile(path string, contents []byte) Op {
	return Op{Kind: KindWriteFile, Target: path, Contents: contents}
}

// EnsureTargetDirectory returns <targetBase>/<service> and the two ops that
// provision it, the base first.
func EnsureTargetDirectory(service, targetBase string) (string, Plan, error) {
	if err := fsops.RequireAbsolute(targetBase); err != nil {
		return "", nil, err
	}

	target := filepath.Join(targetBase, service)
	return target, Plan{EnsureDir(targetBase), EnsureDir(target)}, nil
}

// CopyFiles returns copy ops for every file in source matching pattern
func CopyFiles(source, targetDir, pattern string) (Plan, error) {
	if err := fsops.RequireAbsolute(targetDir); err != nil {
		return nil, err
	}

	names, err := fsops.MatchFiles(source, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", source, err)
	}

	ops := make(Plan, 0, len(names))
	for _, name := range names {
		ops = append(ops, CopyFile(filepath.Join(source, name), filepath.Join(targetDir, name)))
	}
	return ops, nil
}

// Targets returns the target path of each op, in order
func (p Plan) Targets() []string {
	targets := make([]string, len(p))
	for i, op := range p {
		targets[i] = op.Target
	}
	return targets
}

// Execute runs every op in order
func (p Plan) Execute(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	for _, op := range p {
		log.Debug("executing op", zap.String("kind", string(op.Kind)), zap.String("target", op.Target))
		if err := op.run(); err != nil {
			return err
		}
	}
	return nil
}

func (op Op) run() error {
	switch op.Kind {
	case KindEnsureDir:
		return fsops.EnsureDir(op.Target)
	case KindCopyFile:
		if err := fsops.CopyFile(op.Source, op.Target); err != nil {
			return fmt.Errorf("failed to copy %s: %w", op.Source, err)
		}
	case KindWriteFile:
		if err := fsops.WriteFile(op.Target, op.Contents); err != nil {
			return fmt.Errorf("failed to write %s: %w", op.Target, err)
		}
	default:
		return fmt.Errorf("unknown op kind %q", op.Kind)
	}
	return nil
}
