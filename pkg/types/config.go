// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AnalysisConfig holds settings for the extraction and reporting stage.
type AnalysisConfig struct {
	// InputDir is the directory scanned for *.pdf files (non-recursive).
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputPath is the JSON report destination. Empty means the default
	// location next to the input directory.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// PreviewLimit is the number of characters shown in the console
	// preview of a file's first page (default 200).
	PreviewLimit int `json:"preview_limit" yaml:"preview_limit"`
}

// IndexConfig holds settings for the page index.
type IndexConfig struct {
	// IndexDir is the directory holding the SQLite database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of search hits (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// FetchConfig holds settings for downloading reference PDFs.
type FetchConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with download requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// DownloadDelay is the pause between consecutive downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// MaxRetries is the number of retry attempts for a failed download
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Index    IndexConfig    `json:"index" yaml:"index"`
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
}
