// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fetchgenomes retrieves the files of the genome assemblies listed in an
// NCBI assembly report.
//
// The report is the tab-delimited table downloaded from the NCBI genome
// browser. Each assembly's GenBank directory is retrieved over HTTPS into
// a directory named for the assembly. Files that already exist are not
// retrieved again.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/biogo/metatools/assembly"
	"github.com/biogo/metatools/xopen"
)

var (
	inf      = flag.String("in", "", "input assembly report. Defaults to stdin.")
	outdir   = flag.String("outdir", "genomes", "output directory.")
	retries  = flag.Int("retry", 5, "retry specifies the number of attempts to retrieve each file.")
	timeout  = flag.Duration("timeout", 30*time.Minute, "timeout for each request.")
	progress = flag.Bool("progress", true, "show download progress.")
	help     = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *retries < 1 {
		*retries = 1
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "fetchgenomes", ReportTimestamp: true})

	name := *inf
	if name == "" {
		name = "-"
	}
	in, err := xopen.Open(name)
	if err != nil {
		logger.Fatal("failed to open report", "file", *inf, "err", err)
	}
	asms, err := assembly.ReadReport(in)
	in.Close()
	if err != nil {
		logger.Fatal("failed to read report", "file", *inf, "err", err)
	}
	logger.Info("will retrieve assemblies", "assemblies", len(asms))

	f := &fetcher{
		client:  &http.Client{Timeout: *timeout},
		retries: *retries,
		log:     logger,
	}
	var failed int
	for _, a := range asms {
		err = f.assembly(a, filepath.Join(*outdir, a.ID))
		if err != nil {
			logger.Error("failed to retrieve assembly", "assembly", a.ID, "err", err)
			failed++
		}
	}
	if failed != 0 {
		logger.Fatal("incomplete retrieval", "failed", failed, "assemblies", len(asms))
	}
}

type fetcher struct {
	client  *http.Client
	retries int
	log     *log.Logger
}

// assembly retrieves all files in the directory of a into dir.
func (f *fetcher) assembly(a assembly.Assembly, dir string) error {
	u, err := a.HTTPS()
	if err != nil {
		return err
	}
	var files []string
	err = f.get(u.String(), func(r io.Reader) error {
		files, err = assembly.Listing(r)
		return err
	})
	if err != nil {
		return err
	}
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}
	f.log.Info("retrieving assembly", "assembly", a.ID, "files", len(files))

	for _, name := range files {
		dst := filepath.Join(dir, name)
		if _, err := os.Stat(dst); err == nil {
			f.log.Debug("skipping existing file", "file", dst)
			continue
		}
		err = f.file(u.String()+name, dst)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// file retrieves the file at url into dst.
func (f *fetcher) file(url, dst string) error {
	tmp := dst + ".part"
	err := f.get(url, func(r io.Reader) error {
		o, err := os.Create(tmp)
		if err != nil {
			return err
		}
		_, err = io.Copy(o, r)
		if err != nil {
			o.Close()
			return err
		}
		return o.Close()
	})
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dst)
}

// get retrieves url and passes the response body to fn, retrying until
// fn succeeds or the retries are exhausted.
func (f *fetcher) get(url string, fn func(io.Reader) error) error {
	var err error
	for t := 0; t < f.retries; t++ {
		var resp *http.Response
		resp, err = f.client.Get(url)
		if err != nil {
			f.log.Warn("failed to retrieve, retrying", "url", url, "attempt", t, "err", err)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			err = fmt.Errorf("unexpected status: %s", resp.Status)
			if resp.StatusCode == http.StatusNotFound {
				return err
			}
			f.log.Warn("failed to retrieve, retrying", "url", url, "attempt", t, "err", err)
			continue
		}

		var body io.Reader = resp.Body
		var bar *pb.ProgressBar
		if *progress && resp.ContentLength > 0 {
			bar = pb.New64(resp.ContentLength).SetUnits(pb.U_BYTES).Prefix(filepath.Base(url) + " ")
			bar.Output = os.Stderr
			bar.Start()
			body = bar.NewProxyReader(resp.Body)
		}
		err = fn(body)
		resp.Body.Close()
		if bar != nil {
			bar.Finish()
		}
		if err == nil {
			return nil
		}
		f.log.Warn("failed to read, retrying", "url", url, "attempt", t, "err", err)
	}
	return fmt.Errorf("exceeded retries: %w", err)
}
