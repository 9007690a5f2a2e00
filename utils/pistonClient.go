package utils

import (
	"context"
	"fmt"
	"time"

	"skillport/config"

	"github.com/go-resty/resty/v2"
)

// PistonRunResult is the subset of the Piston execute response the
// live-code runner surfaces to the client.
type PistonRunResult struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	Output   string `json:"output"`
	ExitCode int    `json:"exit_code"`
}

type pistonExecuteResponse struct {
	Language string `json:"language"`
	Version  string `json:"version"`
	Run      struct {
		Stdout string `json:"stdout"`
		Stderr string `json:"stderr"`
		Output string `json:"output"`
		Code   int    `json:"code"`
	} `json:"run"`
	Message string `json:"message"`
}

// RunPythonCode executes a Python snippet on the Piston engine. The
// request carries a timeout so an unresponsive engine cannot hold the
// handler open.
func RunPythonCode(ctx context.Context, code string, stdin string) (*PistonRunResult, error) {
	timeout := time.Duration(config.AppConfig.PistonTimeoutSec) * time.Second

	client := resty.New().SetTimeout(timeout)

	var result pistonExecuteResponse
	resp, err := client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"language": "python",
			"version":  "3.10.0",
			"files": []map[string]string{
				{"name": "main.py", "content": code},
			},
			"stdin": stdin,
		}).
		SetResult(&result).
		Post(config.AppConfig.PistonApiUrl + "/execute")
	if err != nil {
		return nil, fmt.Errorf("code execution request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		if result.Message != "" {
			return nil, fmt.Errorf("code execution engine: %s", result.Message)
		}
		return nil, fmt.Errorf("code execution engine returned status %d", resp.StatusCode())
	}

	return &PistonRunResult{
		Stdout:   result.Run.Stdout,
		Stderr:   result.Run.Stderr,
		Output:   result.Run.Output,
		ExitCode: result.Run.Code,
	}, nil
}
