// Package execution bridges room run requests to an external
// code-execution service and normalizes its partially-present response
// shape into a uniform result.
package execution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/collabide/server/pkg/logger"
)

// Request describes one execution of the shared buffer.
type Request struct {
	Language string
	Code     string
	Stdin    string
}

// Result is the uniform outcome of an execution round-trip. Infrastructure
// failures are folded into the same shape as program failures: the failure
// reason lands in Output and ExitCode is 1, so the broadcast path never
// has to distinguish the two.
type Result struct {
	Output   string `json:"output"`
	ExitCode int    `json:"exitCode"`
	IsError  bool   `json:"-"`
}

// languageMap translates the small set of accepted editor language tags to
// the backend's identifiers. Lookup is case-insensitive; unknown tags fall
// back to defaultLanguage rather than rejecting the request.
var languageMap = map[string]string{
	"javascript": "javascript",
	"python":     "python",
	"java":       "java",
	"cpp":        "cpp",
	"c++":        "cpp",
	"c":          "c",
	"typescript": "typescript",
	"go":         "go",
	"rust":       "rust",
	"ruby":       "ruby",
	"php":        "php",
}

const defaultLanguage = "javascript"

// javaClassPattern extracts the declared public class name so the
// submitted file name matches what the Java toolchain requires.
var javaClassPattern = regexp.MustCompile(`public\s+class\s+(\w+)`)

const noOutputPlaceholder = "No output received from execution"

const emptyOutputPlaceholder = "Code executed but produced no visible output."

// Client calls the external execution service. It carries no mutable state
// beyond its configuration, so concurrent executions from any number of
// rooms are independent.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient builds a client for the given endpoint. timeout bounds the
// whole round-trip including connection setup.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Backend wire types. Every field may be absent; pointers and zero values
// both decode cleanly so a malformed or partial body degrades into the
// normalization fallbacks instead of failing.

type fileSpec struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content"`
}

type executeRequest struct {
	Language string     `json:"language"`
	Version  string     `json:"version"`
	Files    []fileSpec `json:"files"`
	Stdin    string     `json:"stdin"`
}

type phaseResult struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Output string `json:"output"`
	Code   *int   `json:"code"`
}

type executeResponse struct {
	Compile *phaseResult `json:"compile"`
	Run     *phaseResult `json:"run"`
}

// Execute runs one execution round-trip. It never returns an error: every
// failure mode is converted into a synthetic Result per the broadcast
// contract.
func (c *Client) Execute(ctx context.Context, req Request) Result {
	body := executeRequest{
		Language: resolveLanguage(req.Language),
		Version:  "*",
		Files:    packageFiles(resolveLanguage(req.Language), req.Code),
		Stdin:    req.Stdin,
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return failureResult(err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return failureResult(err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		logger.Warnf("execution request failed: %v", err)
		return failureResult(err.Error())
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		logger.Warnf("execution response read failed: %v", err)
		return failureResult(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warnf("execution backend returned %d: %s", resp.StatusCode, truncate(string(payload), 200))
		return failureResult(fmt.Sprintf("backend returned status %d\n%s", resp.StatusCode, truncate(string(payload), 500)))
	}

	var decoded executeResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		logger.Warnf("execution response decode failed: %v", err)
		return failureResult(err.Error())
	}

	return normalize(decoded)
}

// resolveLanguage maps an editor language tag to the backend identifier.
func resolveLanguage(tag string) string {
	if mapped, ok := languageMap[strings.ToLower(tag)]; ok {
		return mapped
	}
	return defaultLanguage
}

// packageFiles prepares the files array for submission. Java is the one
// toolchain that requires the file name to match the declared public
// class; everything else submits a single anonymous file.
func packageFiles(language, code string) []fileSpec {
	if language != "java" {
		return []fileSpec{{Content: code}}
	}

	className := "Main"
	if match := javaClassPattern.FindStringSubmatch(code); match != nil {
		className = match[1]
	}
	return []fileSpec{{Name: className + ".java", Content: code}}
}

// normalize applies the precedence rules over the backend's heterogeneous
// response shape. A non-empty compile stderr wins outright and run output
// is not consulted.
func normalize(resp executeResponse) Result {
	compile := resp.Compile
	if compile == nil {
		compile = &phaseResult{}
	}
	run := resp.Run
	if run == nil {
		run = &phaseResult{}
	}

	if compile.Stderr != "" {
		exitCode := 1
		if compile.Code != nil {
			exitCode = *compile.Code
		}
		return Result{
			Output:   "Compilation Error:\n" + compile.Stderr,
			ExitCode: exitCode,
			IsError:  true,
		}
	}

	output := noOutputPlaceholder
	switch {
	case run.Stdout != "":
		output = run.Stdout
	case run.Stderr != "":
		output = run.Stderr
	case run.Output != "":
		output = run.Output
	case compile.Stdout != "":
		output = compile.Stdout
	}

	if trimmed := strings.TrimSpace(output); trimmed != "" {
		output = trimmed
	} else {
		output = emptyOutputPlaceholder
	}

	exitCode := 0
	if run.Code != nil {
		exitCode = *run.Code
	} else if compile.Code != nil {
		exitCode = *compile.Code
	}

	return Result{
		Output:   output,
		ExitCode: exitCode,
	}
}

func failureResult(reason string) Result {
	return Result{
		Output:   "Execution Error: " + reason,
		ExitCode: 1,
		IsError:  true,
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
