package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFlags(t *testing.T) {
	var url string
	var timeout time.Duration
	var timeoutSet bool

	cmd := &Command{
		Name: "test",

		Flags: []Flag{
			&StringFlag{
				Name: "url",
			},

			&DurationFlag{
				Name:  "timeout",
				Value: time.Minute,
			},
		},

		Action: func(ctx context.Context, cmd *Command) error {
			url = cmd.String("url")
			timeout = cmd.Duration("timeout")
			timeoutSet = cmd.IsSet("timeout")

			return nil
		},
	}

	err := cmd.Run(context.Background(), []string{"test", "--url", "http://localhost:1337", "--timeout", "5s"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:1337", url)
	assert.Equal(t, 5*time.Second, timeout)
	assert.True(t, timeoutSet)
}
