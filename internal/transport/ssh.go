package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/fwaudit/fwaudit/internal/logger"
	fwerrors "github.com/fwaudit/fwaudit/pkg/errors"
)

// setupCommands disable interactive paging so command output arrives whole.
var setupCommands = []string{
	"set cli pager off",
	"set cli scripting-mode on",
}

// Client is an SSH-backed Session speaking to one device over an
// interactive shell.
type Client struct {
	cfg  Config
	log  *logger.Logger
	conn *ssh.Client
	sess *ssh.Session

	stdin io.WriteCloser
	out   chan string
	rerr  chan error

	mu     sync.Mutex
	closed bool
}

var _ Session = (*Client)(nil)

// Dial connects to the device, starts an interactive shell, waits out the
// login banner, and runs the terminal setup commands. The returned client is
// ready for Execute calls.
func Dial(ctx context.Context, cfg Config, log *logger.Logger) (*Client, error) {
	cfg = cfg.withDefaults()

	sshCfg := &ssh.ClientConfig{
		User: cfg.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(cfg.Password),
			ssh.KeyboardInteractive(func(name, instruction string, questions []string, echos []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range questions {
					answers[i] = cfg.Password
				}
				return answers, nil
			}),
		},
		// Firewall appliances rotate host keys across reimages; pinning
		// is left to the operator's known_hosts tooling.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         cfg.ConnectTimeout,
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	conn, err := ssh.Dial("tcp", addr, sshCfg)
	if err != nil {
		return nil, fwerrors.NewTransportError(cfg.Host, "", err)
	}

	sess, err := conn.NewSession()
	if err != nil {
		conn.Close()
		return nil, fwerrors.NewTransportError(cfg.Host, "", err)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := sess.RequestPty("xterm", 50, 200, modes); err != nil {
		sess.Close()
		conn.Close()
		return nil, fwerrors.NewTransportError(cfg.Host, "", fmt.Errorf("request pty: %w", err))
	}

	stdin, err := sess.StdinPipe()
	if err != nil {
		sess.Close()
		conn.Close()
		return nil, fwerrors.NewTransportError(cfg.Host, "", err)
	}
	stdout, err := sess.StdoutPipe()
	if err != nil {
		sess.Close()
		conn.Close()
		return nil, fwerrors.NewTransportError(cfg.Host, "", err)
	}

	if err := sess.Shell(); err != nil {
		sess.Close()
		conn.Close()
		return nil, fwerrors.NewTransportError(cfg.Host, "", fmt.Errorf("start shell: %w", err))
	}

	c := &Client{
		cfg:   cfg,
		log:   log,
		conn:  conn,
		sess:  sess,
		stdin: stdin,
		out:   make(chan string, 16),
		rerr:  make(chan error, 1),
	}
	go c.pump(stdout)

	// Drain the login banner up to the first prompt. A device that takes
	// longer than the connect timeout to show a prompt is treated as
	// unreachable.
	drainCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if _, err := c.readUntilPrompt(drainCtx); err != nil {
		c.Close()
		return nil, fwerrors.NewTransportError(cfg.Host, "", fmt.Errorf("waiting for prompt: %w", err))
	}

	for _, cmd := range setupCommands {
		if _, err := c.Execute(ctx, cmd); err != nil {
			c.Close()
			return nil, fwerrors.NewTransportError(cfg.Host, cmd, fmt.Errorf("terminal setup: %w", err))
		}
	}

	c.log.WithFields(map[string]any{"host": cfg.Host, "port": cfg.Port}).Debug("session established")
	return c, nil
}

// pump forwards shell output chunks to the reader loop until the stream ends.
func (c *Client) pump(stdout io.Reader) {
	buf := make([]byte, 4096)
	for {
		n, err := stdout.Read(buf)
		if n > 0 {
			c.out <- string(buf[:n])
		}
		if err != nil {
			c.rerr <- err
			close(c.out)
			return
		}
	}
}

// Execute sends one command down the shell and reads output until the next
// prompt. Pager continuation prompts are answered with a space so paged
// output arrives complete. The returned text is scrubbed of terminal noise,
// the command echo, and the trailing prompt.
func (c *Client) Execute(ctx context.Context, command string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return "", fwerrors.NewTransportError(c.cfg.Host, command, errors.New("session is closed"))
	}

	if _, err := io.WriteString(c.stdin, command+"\n"); err != nil {
		c.closed = true
		return "", fwerrors.NewTransportError(c.cfg.Host, command, fmt.Errorf("send: %w", err))
	}

	cmdCtx, cancel := context.WithTimeout(ctx, c.cfg.CommandTimeout)
	defer cancel()

	raw, err := c.readUntilPrompt(cmdCtx)
	if err != nil {
		return "", fwerrors.NewTransportError(c.cfg.Host, command, err)
	}

	return cleanOutput(raw, command), nil
}

// readUntilPrompt accumulates shell output until a prompt line shows up, the
// context expires, or the stream ends.
func (c *Client) readUntilPrompt(ctx context.Context) (string, error) {
	var output string

	for {
		select {
		case chunk, ok := <-c.out:
			if !ok {
				err := <-c.rerr
				c.closed = true
				if errors.Is(err, io.EOF) {
					err = errors.New("connection closed by device")
				}
				return output, err
			}
			output += chunk
			if hasPrompt(output) {
				return output, nil
			}
			if wantsMore(output) {
				// Space advances the pager; failures surface on
				// the next read.
				_, _ = io.WriteString(c.stdin, " ")
			}
		case <-ctx.Done():
			// Idle shells settle quickly; a final prompt check
			// avoids misreporting output that arrived right at the
			// deadline.
			if hasPrompt(output) {
				return output, nil
			}
			return output, ctx.Err()
		case <-time.After(50 * time.Millisecond):
			if hasPrompt(output) {
				return output, nil
			}
		}
	}
}

// Close tears the shell and connection down. Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.stdin != nil {
		_ = c.stdin.Close()
	}
	if c.sess != nil {
		_ = c.sess.Close()
	}
	var err error
	if c.conn != nil {
		err = c.conn.Close()
	}
	c.log.WithFields(map[string]any{"host": c.cfg.Host}).Debug("session closed")
	return err
}
