package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/qcsr-io/qcsr/pkg/codec"
	"github.com/qcsr-io/qcsr/pkg/stream"
)

const defaultChunkPageLimit = 100

// handleHealth responds to liveness probes.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "ok"})
}

// handleListFiles lists the .qcsr files in the data directory.
func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.config.DataDir)
	if err != nil {
		sendError(w, "Failed to read data directory", http.StatusInternalServerError)
		return
	}

	files := []FileInfo{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".qcsr") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: e.Name(), Size: info.Size()})
	}
	sendSuccess(w, files)
}

// handleFileSummary streams a whole file and responds with aggregate
// statistics without holding more than one chunk in memory.
func (s *Server) handleFileSummary(w http.ResponseWriter, r *http.Request) {
	path, ok := s.resolveFile(w, r)
	if !ok {
		return
	}

	summary := FileSummary{
		Name:  filepath.Base(path),
		Kinds: map[string]int{},
	}
	err := stream.WithReadPort(path, func(p *stream.ReadPort) error {
		summary.Version = p.Version()
		sc := stream.NewScanner(p)
		for sc.Next() {
			c := sc.Chunk()
			summary.Chunks++
			summary.MaskElements += int64(len(c.Mask))
			summary.SetBits += int64(c.Mask.Count())
			summary.Kinds[c.Value.Kind().String()]++
		}
		return sc.Err()
	})
	s.metrics.observeInspection(err)
	if err != nil {
		sendError(w, "Failed to read container: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.metrics.addChunksRead(summary.Chunks)
	sendSuccess(w, summary)
}

// handleFileChunks responds with one page of per-chunk summaries.
func (s *Server) handleFileChunks(w http.ResponseWriter, r *http.Request) {
	path, ok := s.resolveFile(w, r)
	if !ok {
		return
	}

	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", defaultChunkPageLimit)
	if offset < 0 || limit <= 0 {
		sendError(w, "offset must be >= 0 and limit > 0", http.StatusBadRequest)
		return
	}

	page := ChunkPage{
		Name:   filepath.Base(path),
		Offset: offset,
		Limit:  limit,
		Chunks: []ChunkSummary{},
	}
	read := 0
	err := stream.WithReadPort(path, func(p *stream.ReadPort) error {
		sc := stream.NewScanner(p)
		for index := 0; sc.Next(); index++ {
			read++
			if index < offset {
				continue
			}
			if len(page.Chunks) == limit {
				break
			}
			c := sc.Chunk()
			page.Chunks = append(page.Chunks, ChunkSummary{
				Index:   index,
				Kind:    c.Value.Kind().String(),
				MaskLen: len(c.Mask),
				SetBits: c.Mask.Count(),
				Value:   jsonValue(c.Value),
			})
		}
		return sc.Err()
	})
	s.metrics.observeInspection(err)
	if err != nil {
		sendError(w, "Failed to read container: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.metrics.addChunksRead(read)
	sendSuccess(w, page)
}

// resolveFile maps the {name} URL parameter to a path inside the data
// directory, rejecting traversal and missing files.
func (s *Server) resolveFile(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		sendError(w, "Invalid file name", http.StatusBadRequest)
		return "", false
	}
	path := filepath.Join(s.config.DataDir, name)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		sendError(w, "File not found", http.StatusNotFound)
		return "", false
	} else if err != nil {
		sendError(w, "Failed to stat file", http.StatusInternalServerError)
		return "", false
	}
	return path, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}

// jsonValue boxes a scalar for the JSON envelope. Complex kinds become
// {real, imag} objects since encoding/json cannot represent them.
func jsonValue(v codec.Scalar) interface{} {
	switch v.Kind() {
	case codec.KindComplex64:
		c := v.AsComplex64()
		return map[string]float64{"real": float64(real(c)), "imag": float64(imag(c))}
	case codec.KindComplex128:
		c := v.AsComplex128()
		return map[string]float64{"real": real(c), "imag": imag(c)}
	default:
		return v.Interface()
	}
}
