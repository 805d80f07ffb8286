package main

import (
	"bufio"
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"botauth/config"
	"botauth/internal/errors"
	"botauth/internal/infra/auth"
	mockSvc "botauth/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(t *testing.T, bootstrap string) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			SQLitePath:  filepath.Join(t.TempDir(), "botauth.db"),
			AutoMigrate: true,
		},
		Auth: &config.AuthConfig{
			BcryptCost:        bcrypt.MinCost,
			BootstrapPassword: bootstrap,
		},
	}
	cfg.HTTP.CallerSecret = "cli-test-secret"

	return cfg
}

// newTestEnv builds an env whose prompts are answered in order.
func newTestEnv(cfg *config.Config, prompts []string) (*env, *bytes.Buffer) {
	var out bytes.Buffer
	e := &env{
		out: &out,
		loadConfig: func(...string) (*config.Config, error) {
			copied := *cfg

			return &copied, nil
		},
		prompt: func(string) (string, error) {
			if len(prompts) == 0 {
				return "", errors.New("unexpected prompt")
			}
			answer := prompts[0]
			prompts = prompts[1:]

			return answer, nil
		},
	}

	return e, &out
}

func runEnv(e *env, args ...string) error {
	app := newApp(e)
	app.ErrWriter = io.Discard

	return app.RunContext(context.Background(), append([]string{"botauthctl"}, args...))
}

// runCLI executes one botauthctl invocation; prompts are answered in order.
func runCLI(t *testing.T, cfg *config.Config, prompts []string, args ...string) (string, error) {
	t.Helper()

	e, out := newTestEnv(cfg, prompts)
	err := runEnv(e, args...)

	return out.String(), err
}

func rotatedPassword(t *testing.T, output string) string {
	t.Helper()

	for _, line := range strings.Split(output, "\n") {
		if password, ok := strings.CutPrefix(line, "New superuser password: "); ok {
			return password
		}
	}
	t.Fatalf("no password in output %q", output)

	return ""
}

func exitCode(err error) int {
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

func TestCLI_Migrate(t *testing.T) {
	cfg := newTestConfig(t, "")

	out, err := runCLI(t, cfg, nil, "migrate")

	require.NoError(t, err)
	assert.Contains(t, out, "Migrations applied (sqlite)")
}

func TestCLI_StatusBeforeAndAfterRotate(t *testing.T) {
	cfg := newTestConfig(t, "bootstrap")

	out, err := runCLI(t, cfg, nil, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "bootstrap password accepted")

	_, err = runCLI(t, cfg, nil, "rotate")
	require.NoError(t, err)

	out, err = runCLI(t, cfg, nil, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "configured (1 config row(s))")
}

func TestCLI_RotateThenCheck(t *testing.T) {
	cfg := newTestConfig(t, "")

	out, err := runCLI(t, cfg, nil, "rotate")
	require.NoError(t, err)
	password := rotatedPassword(t, out)
	assert.Len(t, password, 16)

	out, err = runCLI(t, cfg, []string{password}, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Password accepted")

	_, err = runCLI(t, cfg, []string{"wrong"}, "check")
	assert.Equal(t, 2, exitCode(err))
}

func TestCLI_RotateWritesQRCode(t *testing.T) {
	cfg := newTestConfig(t, "")
	qrPath := filepath.Join(t.TempDir(), "password.png")

	out, err := runCLI(t, cfg, nil, "rotate", "--qr", qrPath)
	require.NoError(t, err)
	assert.Contains(t, out, "QR code written to "+qrPath)

	f, err := os.Open(qrPath)
	require.NoError(t, err)
	defer f.Close()

	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestCLI_PromoteAndSetPassword(t *testing.T) {
	cfg := newTestConfig(t, "bootstrap")

	_, err := runCLI(t, cfg, []string{"wrong"}, "promote", "--user-id", "77", "--first-name", "Op")
	assert.Equal(t, 2, exitCode(err))

	_, err = runCLI(t, cfg, []string{"new-password", "new-password"}, "set-password", "--user-id", "77")
	assert.Equal(t, 2, exitCode(err), "a demoted user cannot change the password")

	out, err := runCLI(t, cfg, []string{"bootstrap"}, "promote", "--user-id", "77", "--first-name", "Op")
	require.NoError(t, err)
	assert.Contains(t, out, "User 77 is now a superuser")

	out, err = runCLI(t, cfg, []string{"new-password", "new-password"}, "set-password", "--user-id", "77")
	require.NoError(t, err)
	assert.Contains(t, out, "Superuser password changed")

	out, err = runCLI(t, cfg, []string{"new-password"}, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Password accepted")

	_, err = runCLI(t, cfg, []string{"bootstrap"}, "check")
	assert.Equal(t, 2, exitCode(err), "bootstrap password stops working once a password is stored")
}

func TestCLI_SetPasswordRejectsMismatch(t *testing.T) {
	cfg := newTestConfig(t, "")

	_, err := runCLI(t, cfg, []string{"one", "two"}, "set-password", "--user-id", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
}

func TestCLI_CallerToken(t *testing.T) {
	cfg := newTestConfig(t, "")

	out, err := runCLI(t, cfg, nil, "caller-token", "--subject", "telegram-bot", "--ttl", "1h")
	require.NoError(t, err)

	tokens, err := auth.NewCallerTokenService(cfg)
	require.NoError(t, err)
	claims, err := tokens.Validate(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "telegram-bot", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "newline terminated", input: "secret\n", want: "secret"},
		{name: "crlf", input: "secret\r\n", want: "secret"},
		{name: "no trailing newline", input: "secret", want: "secret"},
		{name: "keeps inner spaces", input: " pass word \n", want: " pass word "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readLine(bufio.NewReader(strings.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := readLine(bufio.NewReader(strings.NewReader("")))
	assert.Error(t, err)
}

func TestPasswordPrompt_PipedLinesAcrossPrompts(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = w.WriteString("s3cret\ns3cret\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	p := newPasswordPrompt(r)

	first, err := p.read("New superuser password: ")
	require.NoError(t, err)
	second, err := p.read("Repeat password: ")
	require.NoError(t, err)

	assert.Equal(t, "s3cret", first)
	assert.Equal(t, "s3cret", second)

	_, err = p.read("Again: ")
	assert.Error(t, err)
}

func TestCLI_RotateQRUsesGeneratedImage(t *testing.T) {
	cfg := newTestConfig(t, "")
	qrPath := filepath.Join(t.TempDir(), "password.png")

	qr := mockSvc.NewMockQRCodeService(t)
	var encoded string
	qr.EXPECT().GeneratePasswordQR(mock.AnythingOfType("string")).
		Run(func(password string) { encoded = password }).
		Return([]byte("png-bytes"), nil)

	e, out := newTestEnv(cfg, nil)
	e.qr = qr
	require.NoError(t, runEnv(e, "rotate", "--qr", qrPath))

	assert.Equal(t, rotatedPassword(t, out.String()), encoded)
	written, err := os.ReadFile(qrPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), written)
}

func TestCLI_RotateQRFailure(t *testing.T) {
	cfg := newTestConfig(t, "")
	qrPath := filepath.Join(t.TempDir(), "password.png")

	qr := mockSvc.NewMockQRCodeService(t)
	qr.EXPECT().GeneratePasswordQR(mock.Anything).Return(nil, errors.New("encode failed"))

	e, out := newTestEnv(cfg, nil)
	e.qr = qr
	err := runEnv(e, "rotate", "--qr", qrPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode failed")
	// The password was already rotated and must still reach the operator.
	assert.NotEmpty(t, rotatedPassword(t, out.String()))
	assert.NoFileExists(t, qrPath)
}
