package script

import (
	"context"
	"testing"

	"github.com/retroenv/retrogolib/log"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	suite, err := Load("testdata/smoke.star")
	assert.NoError(err)
	assert.Equal(7, len(suite.Cases))
	assert.Equal("first program", suite.Cases[0].Name)
	assert.Equal("last", suite.Cases[5].Join)
	assert.Equal(64, suite.Cases[6].Steps)

	failed, err := suite.Run(context.Background(), log.NewTestLogger(t))
	assert.NoError(err)
	assert.Empty(failed)
}

func TestLoadSource(t *testing.T) {
	assert := assert.New(t)

	suite, err := LoadSource("inline.star", `
case(name = "one", source = "end\n", want = "")
case(name = "two", source = "msg 'x'\n", want_default = True)
`)
	assert.NoError(err)
	assert.Equal(2, len(suite.Cases))
	assert.Equal("one", suite.Cases[0].Name)
	assert.True(suite.Cases[1].WantDefault)
}

func TestLoadSource_BadStarlark(t *testing.T) {
	assert := assert.New(t)

	suite, err := LoadSource("bad.star", "case(\n")
	assert.Error(err)
	assert.Nil(suite)

	suite, err = LoadSource("bad.star", `case(name = "x")`)
	assert.Error(err)
	assert.Nil(suite)
}

func TestMerge(t *testing.T) {
	assert := assert.New(t)

	a := &Suite{Cases: []Case{{Name: "a1"}, {Name: "a2"}}}
	b := &Suite{Cases: []Case{{Name: "b1"}}}

	merged := Merge(a, b)
	assert.Equal(3, len(merged.Cases))
	assert.Equal("a1", merged.Cases[0].Name)
	assert.Equal("b1", merged.Cases[2].Name)

	assert.Empty(Merge().Cases)
}

func TestSuite_Run_Failures(t *testing.T) {
	assert := assert.New(t)

	suite := &Suite{Cases: []Case{
		{Name: "pass", Source: "msg 'ok'\nend\n", Want: "ok"},
		{Name: "wrong output", Source: "msg 'ok'\nend\n", Want: "nope"},
		{Name: "unexpected completion", Source: "end\n", WantDefault: true},
		{Name: "missing error", Source: "end\n", WantError: "division by zero"},
		{Name: "bad join", Source: "end\n", Join: "bogus"},
		{Name: "parse failure", Source: "bogus\n", Want: ""},
	}}

	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	failed, err := suite.Run(context.Background(), log.NewWithConfig(cfg))
	assert.NoError(err)
	assert.Equal([]string{
		"wrong output",
		"unexpected completion",
		"missing error",
		"bad join",
		"parse failure",
	}, failed)
}

func TestSuite_Run_Cancelled(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite := &Suite{Cases: []Case{{Name: "never", Source: "end\n", Want: ""}}}
	_, err := suite.Run(ctx, log.NewTestLogger(t))
	assert.ErrorIs(err, context.Canceled)
}
