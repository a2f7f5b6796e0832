package pkg

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"time"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"
)

const ServerIdleTimeout = 5 * time.Minute

// Server is the ssh front door. Terminals get the client binary on a
// pseudo-terminal; piped sessions get the line console.
type Server struct {
	*ssh.Server
	cfg Config
	log *zap.SugaredLogger
}

func NewServer(cfg Config, log *zap.SugaredLogger) (*Server, error) {
	s := &ssh.Server{
		Addr:        cfg.SSHAddr,
		IdleTimeout: ServerIdleTimeout,
	}
	server := &Server{Server: s, cfg: cfg, log: log}
	s.Handler = server.handle

	if cfg.HostKeyFile != "" {
		if err := s.SetOption(ssh.HostKeyFile(cfg.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("ssh: host key %s: %w", cfg.HostKeyFile, err)
		}
		return server, nil
	}
	signer, err := generateHostKey()
	if err != nil {
		return nil, err
	}
	s.AddHostKey(signer)
	log.Infow("Generated ephemeral host key", "fingerprint", gossh.FingerprintSHA256(signer.PublicKey()))
	return server, nil
}

func generateHostKey() (gossh.Signer, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("ssh: generate host key: %w", err)
	}
	return gossh.NewSignerFromKey(key)
}

func (srv *Server) handle(s ssh.Session) {
	log := srv.log.With("session", petname.Generate(2, "-"), "user", s.User(), "remote", s.RemoteAddr().String())
	log.Info("Session started")
	defer log.Info("Session ended")

	ptyReq, winCh, isPty := s.Pty()
	if !isPty {
		srv.serveConsole(s, log)
		return
	}

	cmd := exec.CommandContext(s.Context(), srv.cfg.ClientPath, srv.clientArgs()...)
	cmd.Env = append(s.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		log.Errorw("Failed to start client", "error", err)
		io.WriteString(s, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		s.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()

	go func() {
		io.Copy(f, s)
	}()
	io.Copy(s, f)

	if err := cmd.Wait(); err != nil {
		log.Debugw("Client exited", "error", err)
	}
}

// clientArgs forwards the search settings to the client binary.
func (srv *Server) clientArgs() []string {
	return []string{
		"--depth", strconv.Itoa(srv.cfg.Depth),
		"--strategy", srv.cfg.Strategy,
		"--parallel=" + strconv.FormatBool(srv.cfg.Parallel),
		"--material-weight", strconv.FormatFloat(srv.cfg.MaterialWeight, 'g', -1, 64),
		"--mobility-weight", strconv.FormatFloat(srv.cfg.MobilityWeight, 'g', -1, 64),
		"--theme", srv.cfg.Theme,
	}
}

func (srv *Server) serveConsole(s ssh.Session, log *zap.SugaredLogger) {
	cfg := srv.cfg
	player, err := NewPlayer(&cfg, log)
	if err != nil {
		log.Errorw("Failed to create player", "error", err)
		s.Exit(1)
		return
	}
	if err := NewConsole(player, s, s, log).Run(s.Context()); err != nil {
		log.Debugw("Console stopped", "error", err)
		s.Exit(1)
		return
	}
	s.Exit(0)
}
