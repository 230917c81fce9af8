// Package archive drops generated export files on an FTP share for external
// pickup. Uploads are best-effort: the export response never waits on or
// fails with the archive.
package archive

import (
	"bytes"
	"log"
	"path"
	"time"

	"github.com/jlaffaye/ftp"

	"itam/internal/config"
)

type Uploader struct {
	addr     string
	user     string
	password string
	dir      string
}

func NewUploader(cfg *config.Config) *Uploader {
	return &Uploader{
		addr:     cfg.FTPAddr,
		user:     cfg.FTPUser,
		password: cfg.FTPPassword,
		dir:      cfg.FTPDir,
	}
}

func (u *Uploader) Enabled() bool {
	return u != nil && u.addr != ""
}

// Upload stores one generated file on the share. Errors are logged only.
func (u *Uploader) Upload(filename string, data []byte) {
	if !u.Enabled() {
		return
	}

	conn, err := ftp.Dial(u.addr, ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		log.Printf("ftp dial %s: %v", u.addr, err)
		return
	}
	defer func() { _ = conn.Quit() }()

	if err := conn.Login(u.user, u.password); err != nil {
		log.Printf("ftp login: %v", err)
		return
	}

	target := filename
	if u.dir != "" {
		target = path.Join(u.dir, filename)
	}
	if err := conn.Stor(target, bytes.NewReader(data)); err != nil {
		log.Printf("ftp store %s: %v", target, err)
		return
	}
	log.Printf("export archived to ftp: %s", target)
}
