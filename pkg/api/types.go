package api

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the inspection server.
type ServerConfig struct {
	Bind    string
	Port    int
	APIKey  string // empty disables authentication
	DataDir string // directory containing .qcsr files
}

// FileInfo describes one container file in the data directory.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// FileSummary aggregates a whole container file.
type FileSummary struct {
	Name         string         `json:"name"`
	Version      uint32         `json:"version"`
	Chunks       int            `json:"chunks"`
	MaskElements int64          `json:"mask_elements"`
	SetBits      int64          `json:"set_bits"`
	Kinds        map[string]int `json:"kinds"`
}

// ChunkSummary describes one chunk of a container file.
type ChunkSummary struct {
	Index   int         `json:"index"`
	Kind    string      `json:"kind"`
	MaskLen int         `json:"mask_len"`
	SetBits int         `json:"set_bits"`
	Value   interface{} `json:"value"`
}

// ChunkPage is one page of chunk summaries.
type ChunkPage struct {
	Name   string         `json:"name"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
	Chunks []ChunkSummary `json:"chunks"`
}
