package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func newTestConfig(out, log *bytes.Buffer) *config.ConfigBuilder {
	return config.NewConfigBuilder().WithOutput(out).WithLog(log).WithWorkers(2)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *config.ConfigBuilder) *config.Config
		want  string
	}{
		{
			name:  "initial position",
			setup: func(b *config.ConfigBuilder) *config.Config { return b.WithDepth(2).Build() },
			want:  "Nodes: 400\n",
		},
		{
			name:  "depth zero",
			setup: func(b *config.ConfigBuilder) *config.Config { return b.WithDepth(0).Build() },
			want:  "Nodes: 1\n",
		},
		{
			name: "after moves",
			setup: func(b *config.ConfigBuilder) *config.Config {
				return b.WithMoves("e2e4").WithDepth(1).Build()
			},
			want: "Nodes: 20\n",
		},
		{
			name: "fen padded",
			setup: func(b *config.ConfigBuilder) *config.Config {
				return b.WithFEN(testutil.Position3).WithPadded(true).WithDepth(3).Build()
			},
			want: "Nodes: 2812\n",
		},
		{
			name: "chess960",
			setup: func(b *config.ConfigBuilder) *config.Config {
				return b.WithChess960(518).WithDepth(2).Build()
			},
			want: "Nodes: 400\n",
		},
		{
			name: "paranoid",
			setup: func(b *config.ConfigBuilder) *config.Config {
				cfg := b.WithFEN(testutil.Kiwipete).WithDepth(2).Build()
				cfg.Perft.Paranoid = true
				return cfg
			},
			want: "Nodes: 2039\n",
		},
		{
			name: "verify",
			setup: func(b *config.ConfigBuilder) *config.Config {
				return b.WithFEN(testutil.Position4).WithDepth(2).WithVerify(true).Build()
			},
			want: "Nodes: 264\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, log := &bytes.Buffer{}, &bytes.Buffer{}
			cfg := tt.setup(newTestConfig(out, log))
			testutil.AssertNoError(t, cfg.Validate())
			testutil.AssertNoError(t, run(cfg), log.String())
			testutil.AssertEqual(t, out.String(), tt.want)
		})
	}
}

func TestRun_Divide(t *testing.T) {
	out, log := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := newTestConfig(out, log).WithDepth(2).WithDivide(true).Build()

	testutil.AssertNoError(t, run(cfg))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 22)
	testutil.AssertEqual(t, lines[0], "a2a3: 20")
	testutil.AssertEqual(t, lines[20], "")
	testutil.AssertEqual(t, lines[21], "Nodes: 400")
	testutil.AssertContains(t, out.String(), "g1f3: 20\n")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *config.ConfigBuilder) *config.Config
		want  error
	}{
		{
			name:  "bad fen",
			setup: func(b *config.ConfigBuilder) *config.Config { return b.WithFEN("8/8/8 w - - 0 1").Build() },
			want:  errors.ErrInvalidFEN,
		},
		{
			name:  "illegal move",
			setup: func(b *config.ConfigBuilder) *config.Config { return b.WithMoves("e2e5").Build() },
			want:  errors.ErrIllegalMove,
		},
		{
			name:  "malformed move",
			setup: func(b *config.ConfigBuilder) *config.Config { return b.WithMoves("castle").Build() },
			want:  errors.ErrInvalidMove,
		},
		{
			name: "verify unsupported position",
			setup: func(b *config.ConfigBuilder) *config.Config {
				return b.WithChess960(0).WithDepth(1).WithVerify(true).Build()
			},
			want: errors.ErrInvalidSetup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, log := &bytes.Buffer{}, &bytes.Buffer{}
			err := run(tt.setup(newTestConfig(out, log)))
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestRun_Logging(t *testing.T) {
	out, log := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := newTestConfig(out, log).WithDepth(1).WithVerbosity(1).Build()

	testutil.AssertNoError(t, run(cfg))
	testutil.AssertContains(t, log.String(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	log.Reset()
	cfg = newTestConfig(out, log).WithDepth(1).WithVerbosity(0).Build()
	testutil.AssertNoError(t, run(cfg))
	testutil.AssertEqual(t, log.String(), "")
}
