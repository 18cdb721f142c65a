package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// BatchFile is the YAML layout read by the batch command:
//
//	jobs:
//	  - name: reference-simpson
//	    method: simpson
//	    func: reference
//	    from: 0
//	    to: pi/2
//	    n: 100
type BatchFile struct {
	Jobs []Job `yaml:"jobs"`
}

// BatchOutput is the payload of the batch command.
type BatchOutput []Result

// String renders one line per job.
func (o BatchOutput) String() string {
	var b strings.Builder
	for _, r := range o {
		fmt.Fprintf(&b, "%-20s %-12s %-10s n=%-5d %.12f\n", r.Name, r.Method, r.Func, r.N, r.Value)
	}

	return b.String()
}

// LoadBatch decodes a job file. Unknown fields are rejected so typos in
// job files surface as errors.
func LoadBatch(r io.Reader) (BatchFile, error) {
	var bf BatchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bf); err != nil {
		if err == io.EOF {
			return BatchFile{}, nil
		}
		return BatchFile{}, err
	}

	return bf, nil
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Run integration jobs from a YAML file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}
}

func runBatch(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	log := rootOpts.logger()

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return formatter.Fail(WrapExitError(ExitCommandError, "open job file", err))
		}
		defer f.Close()
		in = f
	}

	bf, err := LoadBatch(in)
	if err != nil {
		return formatter.Fail(WrapExitError(ExitCommandError, "parse job file", err))
	}
	log.Debug("batch loaded", "path", path, "jobs", len(bf.Jobs))

	out := make(BatchOutput, 0, len(bf.Jobs))
	for i, job := range bf.Jobs {
		if job.Name == "" {
			job.Name = fmt.Sprintf("job-%d", i+1)
		}
		start := time.Now()
		res, err := Run(job)
		if err != nil {
			return formatter.Fail(classify(fmt.Sprintf("job %q", job.Name), err))
		}
		log.Debug("job done", "name", job.Name, "value", res.Value, "elapsed", time.Since(start))
		out = append(out, res)
	}

	return formatter.Success(out)
}
