package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ringnet/quakecast/internal/command"
	"github.com/ringnet/quakecast/internal/logger"
	"github.com/ringnet/quakecast/internal/model"
)

const envModelsDir = "QUAKECAST_MODELS_DIR"

// stdinIsTTY is a small seam for tests.
var stdinIsTTY = func() bool { return logger.IsTerminal(os.Stdin) }

// candidate is an artifact found in a models directory. Info is only
// meaningful when Err is nil.
type candidate struct {
	Path string
	Info model.Info
	Err  error
}

func (c candidate) describe(dir string) string {
	name := c.Path
	if rel, err := filepath.Rel(dir, c.Path); err == nil {
		name = rel
	}
	return fmt.Sprintf("%s (%s, %d features)", name, c.Info.Kind, c.Info.Features)
}

func resolveModelPath(modelFlag string, modelsPath string, stdin io.Reader, stderr io.Writer) (string, error) {
	modelFlag = strings.TrimSpace(modelFlag)
	if modelFlag != "" {
		return filepath.Clean(modelFlag), nil
	}

	modelsDir := strings.TrimSpace(modelsPath)
	if modelsDir == "" {
		modelsDir = strings.TrimSpace(os.Getenv(envModelsDir))
	}
	if modelsDir == "" {
		return command.DefaultModelPath, nil
	}

	found, err := discoverModels(modelsDir)
	if err != nil {
		return "", err
	}
	usable := make([]candidate, 0, len(found))
	var skipped []string
	for _, c := range found {
		if c.Err != nil {
			skipped = append(skipped, c.Err.Error())
			continue
		}
		usable = append(usable, c)
	}

	switch len(usable) {
	case 0:
		if len(skipped) > 0 {
			return "", fmt.Errorf("no loadable model in %s (%s)", modelsDir, strings.Join(skipped, "; "))
		}
		return "", fmt.Errorf("no model artifacts found in %s", modelsDir)
	case 1:
		return usable[0].Path, nil
	default:
		if !stdinIsTTY() {
			return "", fmt.Errorf(
				"%d models found in %s but stdin is not interactive; set --model",
				len(usable), modelsDir,
			)
		}
		_, _ = fmt.Fprintf(stderr, "models in %s:\n", modelsDir)
		for i, c := range usable {
			_, _ = fmt.Fprintf(stderr, "%d. %s\n", i+1, c.describe(modelsDir))
		}
		idx, err := readSelection(stdin, stderr, len(usable))
		if err != nil {
			return "", err
		}
		return usable[idx].Path, nil
	}
}

// discoverModels decodes every artifact in dir, sorted by path. Files that
// fail to load are returned with Err set.
func discoverModels(dir string) ([]candidate, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("models directory is empty")
	}
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("models path is not a directory: %s", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range ents {
		if !e.IsDir() && model.IsArtifact(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	found := make([]candidate, 0, len(paths))
	for _, p := range paths {
		c := candidate{Path: p}
		if m, err := model.Load(p); err != nil {
			c.Err = err
		} else {
			c.Info = m.Info()
		}
		found = append(found, c)
	}
	return found, nil
}

// readSelection prompts until a number in [1, n] is read and returns it
// zero-based. Running out of input is an error.
func readSelection(stdin io.Reader, stderr io.Writer, n int) (int, error) {
	sc := bufio.NewScanner(stdin)
	for {
		_, _ = fmt.Fprintf(stderr, "select a model [1-%d]: ", n)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, errors.New("no model selected on stdin; set --model")
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > n {
			_, _ = fmt.Fprintf(stderr, "invalid selection %q\n", line)
			continue
		}
		return idx - 1, nil
	}
}
