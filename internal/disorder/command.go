// internal/disorder/command.go
package disorder

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"motifmask/internal/interval"
)

const (
	DefaultTimeout          = 600 * time.Second
	DefaultBindingThreshold = 0.5
)

// Command runs an IUPred2A-style executable once per sequence:
//
//	<Path> [Args...] <fasta-file>
//
// and reads whitespace separated rows "position residue disorder [binding]"
// from its standard output. Lines starting with '#' are ignored.
type Command struct {
	Path             string
	Args             []string
	Timeout          time.Duration // <= 0 uses DefaultTimeout
	BindingThreshold float64       // <= 0 uses DefaultBindingThreshold
	TempDir          string
	Log              logrus.FieldLogger
}

// Check resolves the executable so a missing predictor fails before any
// sequence is read.
func (c *Command) Check() error {
	if c.Path == "" {
		return fmt.Errorf("%w: no executable configured", ErrUnavailable)
	}
	if _, err := exec.LookPath(c.Path); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (c *Command) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c *Command) bindingThreshold() float64 {
	if c.BindingThreshold <= 0 {
		return DefaultBindingThreshold
	}
	return c.BindingThreshold
}

// Predict writes residues to a temporary FASTA file and runs the predictor
// on it. A timeout or a non-zero exit is returned as an error.
func (c *Command) Predict(ctx context.Context, id string, residues []byte) (Prediction, error) {
	in, err := os.CreateTemp(c.TempDir, "motifmask-*.fa")
	if err != nil {
		return Prediction{}, fmt.Errorf("disorder: %s: %w", id, err)
	}
	defer func() { _ = os.Remove(in.Name()) }()
	if _, err := fmt.Fprintf(in, ">%s\n%s\n", id, residues); err != nil {
		_ = in.Close()
		return Prediction{}, fmt.Errorf("disorder: %s: %w", id, err)
	}
	if err := in.Close(); err != nil {
		return Prediction{}, fmt.Errorf("disorder: %s: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	args := append(append([]string(nil), c.Args...), in.Name())
	cmd := exec.CommandContext(ctx, c.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	start := time.Now()
	err = cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Prediction{}, fmt.Errorf("%w: %s after %v", ErrTimeout, id, c.timeout())
	}
	if ctx.Err() != nil {
		return Prediction{}, ctx.Err()
	}
	if err != nil {
		return Prediction{}, fmt.Errorf("disorder: %s: %s: %v: %s", id, c.Path, err, strings.TrimSpace(stderr.String()))
	}
	if c.Log != nil {
		c.Log.WithFields(logrus.Fields{"sequence": id, "elapsed": time.Since(start)}).Debug("predictor finished")
	}

	pred, err := ParseOutput(&stdout, len(residues), c.bindingThreshold())
	if err != nil {
		return Prediction{}, fmt.Errorf("disorder: %s: %w", id, err)
	}
	return pred, nil
}

// ParseOutput reads predictor rows into a Prediction for a sequence of
// length n. Binding regions are the runs whose binding score is >=
// bindingThreshold; rows without a binding column contribute none.
func ParseOutput(r io.Reader, n int, bindingThreshold float64) (Prediction, error) {
	dis := make([]float64, n)
	bind := make([]float64, n)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cols := strings.Fields(text)
		if len(cols) < 3 {
			return Prediction{}, fmt.Errorf("line %d: want at least 3 columns, got %d", line, len(cols))
		}
		pos, err := strconv.Atoi(cols[0])
		if err != nil {
			return Prediction{}, fmt.Errorf("line %d: bad position %q", line, cols[0])
		}
		if pos < 1 || pos > n {
			return Prediction{}, fmt.Errorf("line %d: position %d outside 1..%d", line, pos, n)
		}
		if dis[pos-1], err = strconv.ParseFloat(cols[2], 64); err != nil {
			return Prediction{}, fmt.Errorf("line %d: bad disorder score %q", line, cols[2])
		}
		if len(cols) > 3 {
			if bind[pos-1], err = strconv.ParseFloat(cols[3], 64); err != nil {
				return Prediction{}, fmt.Errorf("line %d: bad binding score %q", line, cols[3])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Prediction{}, err
	}
	return Prediction{
		Binding:  interval.RunLengthEncode(bind, bindingThreshold, false),
		Disorder: dis,
	}, nil
}
