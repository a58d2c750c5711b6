package commands

import (
	"bytes"
	"net"
	"os"
	"path"
	"strconv"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCommand(t *testing.T) {
	color.NoColor = true

	t.Run("reports unresolvable target without scanning", func(st *testing.T) {
		out := &bytes.Buffer{}

		cmd := Root()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs([]string{
			"scan",
			"definitely-not-a-real-host.invalid",
			"--silent",
		})

		err := cmd.Execute()

		assert.NoError(st, err)
		assert.Contains(
			st,
			out.String(),
			"Error: Unable to resolve definitely-not-a-real-host.invalid",
		)
		assert.NotContains(st, out.String(), "Scanning IP")
	})

	t.Run("scans a single open loopback port", func(st *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(st, err)

		defer listener.Close()

		go func() {
			for {
				conn, err := listener.Accept()
				if err != nil {
					return
				}
				conn.Close()
			}
		}()

		port := strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)

		out := &bytes.Buffer{}

		cmd := Root()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs([]string{
			"scan",
			"127.0.0.1",
			"--min", port,
			"--max", port,
			"--timeout", "500ms",
			"--silent",
		})

		err = cmd.Execute()

		assert.NoError(st, err)
		assert.Contains(st, out.String(), "Resolved IP for 127.0.0.1: 127.0.0.1")
		assert.Contains(st, out.String(), "Port "+port+" is open (Service: Unknown)")
	})

	t.Run("writes diagnostics to the configured log file", func(st *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(st, err)

		defer listener.Close()

		go func() {
			for {
				conn, err := listener.Accept()
				if err != nil {
					return
				}
				conn.Close()
			}
		}()

		port := strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)

		logPath := path.Join(st.TempDir(), "portsweep.log")
		viper.Set("log-file", logPath)

		defer viper.Set("log-file", "")

		out := &bytes.Buffer{}

		cmd := Root()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs([]string{
			"scan",
			"127.0.0.1",
			"--min", port,
			"--max", port,
			"--timeout", "500ms",
		})

		err = cmd.Execute()

		assert.NoError(st, err)
		assert.Contains(st, out.String(), "Port "+port+" is open (Service: Unknown)")

		contents, err := os.ReadFile(logPath)
		require.NoError(st, err)
		assert.Contains(st, string(contents), "Scanning target")
	})

	t.Run("rejects a backwards port range", func(st *testing.T) {
		out := &bytes.Buffer{}

		cmd := Root()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs([]string{
			"scan",
			"127.0.0.1",
			"--min", "443",
			"--max", "80",
			"--silent",
		})

		err := cmd.Execute()

		assert.Error(st, err)
		assert.NotContains(st, out.String(), "Port")
	})
}
