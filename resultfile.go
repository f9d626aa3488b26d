package aead

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/multierr"
)

// ResultFile appends machine-readable case results into a single JSON
// array on disk. A nil *ResultFile is a no-op sink.
type ResultFile struct {
	F *os.File
	*sync.Mutex
	Closed  bool
	HasRows bool
	Name    string
}

func NewResultFile(file string) *ResultFile {
	if file == "" {
		return nil
	}

	rf := &ResultFile{Name: file, Mutex: &sync.Mutex{}}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		log.Printf("E! Fail to open results file %s error: %v", file, err)
		return rf
	}
	rf.F = f
	if n, err := f.Seek(0, io.SeekEnd); err != nil {
		log.Printf("E! fail to seek file %s error: %v", file, err)
	} else if n == 0 {
		f.WriteString("[]\n")
	} else {
		rf.HasRows = true
	}
	return rf
}

func (f *ResultFile) WriteJSON(v interface{}) error {
	if f == nil || f.F == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	f.Lock()
	defer f.Unlock()

	f.F.Seek(-2, io.SeekEnd) // \n]
	var err0 error

	if !f.HasRows {
		f.HasRows = true
		_, err0 = f.F.WriteString("\n")
	} else {
		_, err0 = f.F.WriteString(",\n")
	}
	_, err1 := f.F.Write(data)
	_, err2 := f.F.WriteString("\n]")
	return multierr.Combine(err0, err1, err2)
}

func (f *ResultFile) Close() error {
	if f == nil || f.F == nil {
		return nil
	}

	f.Lock()
	defer f.Unlock()
	f.Closed = true
	return f.F.Close()
}
