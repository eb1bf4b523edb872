package ceg_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cegraph/ceg"
	"github.com/katalvlaran/cegraph/core"
)

const sinkID = "sink"

// buildFallStudyGraph assembles a staged four-variable falls study:
// injury group (Blast / NonBlast), assessor experience (Experienced /
// Inexperienced / Novice), terrain (Easy / Hard) and outcome (Positive /
// Negative). All 24 outcome paths are observed once, every internal edge
// carries its descendant-leaf tally, and the outcome edges of s9 carry a
// probability so attribute folding is visible in the result.
//
// Situations are numbered level by level: s0 root, s1-s2 injury, s3-s8
// experience, s9-s20 terrain. Outcome leaves are pre-collapsed into the
// designated sink, the shape a staged tree hands over.
//
// Stages assert that experience splits the same way within an injury
// group (v1, v2, v3) and that terrain splits identically for the four
// group/experience combinations in each u-block.
func buildFallStudyGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()

	count := func(n float64) core.AttrMap {
		return core.AttrMap{core.AttrCount: n}
	}
	outcome := func(n, p float64) core.AttrMap {
		return core.AttrMap{core.AttrCount: n, core.AttrProbability: p}
	}

	require.NoError(t, g.AddEdge("s0", "s1", "Blast", count(12)))
	require.NoError(t, g.AddEdge("s0", "s2", "NonBlast", count(12)))

	experience := []string{"Experienced", "Inexperienced", "Novice"}
	for i, parent := range []string{"s1", "s2"} {
		for j, label := range experience {
			child := "s" + strconv.Itoa(3+i*3+j)
			require.NoError(t, g.AddEdge(parent, child, label, count(4)))
		}
	}
	for i := 0; i < 6; i++ {
		parent := "s" + strconv.Itoa(3+i)
		require.NoError(t, g.AddEdge(parent, "s"+strconv.Itoa(9+2*i), "Easy", count(2)))
		require.NoError(t, g.AddEdge(parent, "s"+strconv.Itoa(10+2*i), "Hard", count(2)))
	}
	for i := 9; i <= 20; i++ {
		terrain := "s" + strconv.Itoa(i)
		p := 0.5
		if terrain == "s9" {
			p = 0.6
		}
		require.NoError(t, g.AddEdge(terrain, sinkID, "Positive", outcome(1, p)))
		require.NoError(t, g.AddEdge(terrain, sinkID, "Negative", outcome(1, 1-p)))
	}

	stages := map[string][]string{
		"baseline": {"s0"},
		"blast":    {"s1"},
		"nonblast": {"s2"},
		"v1":       {"s3", "s4"},
		"v2":       {"s5", "s6"},
		"v3":       {"s7", "s8"},
		"u1":       {"s9", "s10", "s11", "s12"},
		"u2":       {"s13", "s14", "s15", "s16"},
		"u3":       {"s17", "s18", "s19", "s20"},
	}
	for stage, ids := range stages {
		for _, id := range ids {
			require.NoError(t, g.SetStage(id, stage))
		}
	}
	require.NoError(t, g.SetRoot("s0"))
	require.NoError(t, g.SetSink(sinkID))

	return g
}


type CEGSuite struct {
	suite.Suite
	c *ceg.CEG
}

func (s *CEGSuite) SetupTest() {
	g := buildFallStudyGraph(s.T())
	c, err := ceg.New(g)
	s.Require().NoError(err)
	s.c = c
}

// The 22-node staged input collapses to the minimal 10-node CEG.
func (s *CEGSuite) TestGenerateCollapsesToMinimalGraph() {
	s.Require().NoError(s.c.Generate())
	g := s.c.Graph()

	s.Equal(10, g.NodeCount())
	s.Equal(20, g.EdgeCount())
	s.Equal(
		[]string{"w0", "w1", "w2", "w3", "w4", "w5", "w6", "w7", "w8", "winf"},
		g.Nodes(),
	)
	s.Equal("w0", g.Root())
	s.Equal("winf", g.Sink())
	s.Equal(ceg.PhaseStable, s.c.Phase())
}

// Interior nodes are numbered root-outward: injury level first, then
// experience, then terrain.
func (s *CEGSuite) TestCanonicalWiring() {
	s.Require().NoError(s.c.Generate())
	g := s.c.Graph()

	s.True(g.HasEdge("w0", "w1", "Blast"))
	s.True(g.HasEdge("w0", "w2", "NonBlast"))

	// Blast: Experienced and Inexperienced assessors behave alike, so
	// both labels run in parallel into the same node.
	s.True(g.HasEdge("w1", "w3", "Experienced"))
	s.True(g.HasEdge("w1", "w3", "Inexperienced"))
	s.True(g.HasEdge("w1", "w4", "Novice"))

	// NonBlast: Experienced matches Blast's Novice block; the other two
	// levels of experience share a node of their own.
	s.True(g.HasEdge("w2", "w4", "Experienced"))
	s.True(g.HasEdge("w2", "w5", "Inexperienced"))
	s.True(g.HasEdge("w2", "w5", "Novice"))

	for _, mid := range []string{"w3", "w4", "w5"} {
		next := map[string]string{"w3": "w6", "w4": "w7", "w5": "w8"}[mid]
		s.True(g.HasEdge(mid, next, "Easy"))
		s.True(g.HasEdge(mid, next, "Hard"))
	}
	for _, terrain := range []string{"w6", "w7", "w8"} {
		s.True(g.HasEdge(terrain, "winf", "Positive"))
		s.True(g.HasEdge(terrain, "winf", "Negative"))
	}
}

// Folded edges sum their counts; the probability of the surviving edge
// is the one already on the representative, later operands never
// overwrite it.
func (s *CEGSuite) TestMergedAttributes() {
	s.Require().NoError(s.c.Generate())
	g := s.c.Graph()

	easy, err := g.Edge("w3", "w6", "Easy")
	s.Require().NoError(err)
	s.Equal(4.0, easy.Attrs.Get(core.AttrCount))

	// s9's 0.6 arrived after the representative's 0.5 and was dropped.
	pos, err := g.Edge("w6", "winf", "Positive")
	s.Require().NoError(err)
	s.Equal(4.0, pos.Attrs.Get(core.AttrCount))
	s.Equal(0.5, pos.Attrs.Get(core.AttrProbability))

	blast, err := g.Edge("w0", "w1", "Blast")
	s.Require().NoError(err)
	s.Equal(12.0, blast.Attrs.Get(core.AttrCount))
}

// Stage labels ride along through merging and relabeling, and the
// partition always covers every node exactly once.
func (s *CEGSuite) TestStagePartition() {
	s.Require().NoError(s.c.Generate())

	stages := s.c.Stages()
	s.Equal(map[string][]string{
		"baseline": {"w0"},
		"blast":    {"w1"},
		"nonblast": {"w2"},
		"v1":       {"w3"},
		"v2":       {"w4"},
		"v3":       {"w5"},
		"u1":       {"w6"},
		"u2":       {"w7"},
		"u3":       {"w8"},
		"":         {"winf"},
	}, stages)

	total := 0
	for _, ids := range stages {
		total += len(ids)
	}
	s.Equal(s.c.Graph().NodeCount(), total)
}

func (s *CEGSuite) TestGenerateTwiceRejected() {
	s.Require().NoError(s.c.Generate())
	err := s.c.Generate()
	s.Require().ErrorIs(err, ceg.ErrAlreadyGenerated)
	s.Equal(ceg.PhaseStable, s.c.Phase())
}

func (s *CEGSuite) TestCustomNodePrefix() {
	s.Require().NoError(s.c.Generate(ceg.WithNodePrefix("v")))
	g := s.c.Graph()
	s.Equal("v0", g.Root())
	s.Equal("vinf", g.Sink())
	s.True(g.HasNode("v1"))
	s.False(g.HasNode("w1"))
}

func (s *CEGSuite) TestEmptyPrefixRejected() {
	err := s.c.Generate(ceg.WithNodePrefix(""))
	s.Require().ErrorIs(err, ceg.ErrOptionViolation)
	s.Equal(ceg.PhaseUninitialized, s.c.Phase())
}

func (s *CEGSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.c.Generate(ceg.WithContext(ctx))
	s.Require().ErrorIs(err, context.Canceled)
}

func TestCEGSuite(t *testing.T) {
	suite.Run(t, new(CEGSuite))
}

func TestNew_NilGraph(t *testing.T) {
	_, err := ceg.New(nil)
	require.ErrorIs(t, err, ceg.ErrGraphNil)
}

func TestGenerate_MissingRoot(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", "x", nil))
	require.NoError(t, g.SetSink("b"))

	c, err := ceg.New(g)
	require.NoError(t, err)
	require.ErrorIs(t, c.Generate(), ceg.ErrNoRoot)
}

func TestGenerate_MissingSink(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", "x", nil))
	require.NoError(t, g.SetRoot("a"))

	c, err := ceg.New(g)
	require.NoError(t, err)
	require.ErrorIs(t, c.Generate(), ceg.ErrNoSink)
}

// An input with no stage assignments degrades gracefully: nothing
// merges, the tree shape survives, only the names change.
func TestGenerate_UnstagedInputMergesNothing(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("r", "a", "x", nil))
	require.NoError(t, g.AddEdge("r", "b", "y", nil))
	require.NoError(t, g.AddEdge("a", "t", "z", nil))
	require.NoError(t, g.AddEdge("b", "t", "z", nil))
	require.NoError(t, g.SetRoot("r"))
	require.NoError(t, g.SetSink("t"))

	c, err := ceg.New(g)
	require.NoError(t, err)
	require.NoError(t, c.Generate())
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, []string{"w0", "w1", "w2", "winf"}, g.Nodes())
}

// Same shape, but a and b share a stage and the same outgoing edge set,
// so they collapse.
func TestGenerate_StagedPairCollapses(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("r", "a", "x", core.AttrMap{core.AttrCount: 1}))
	require.NoError(t, g.AddEdge("r", "b", "y", core.AttrMap{core.AttrCount: 2}))
	require.NoError(t, g.AddEdge("a", "t", "z", core.AttrMap{core.AttrCount: 1}))
	require.NoError(t, g.AddEdge("b", "t", "z", core.AttrMap{core.AttrCount: 2}))
	require.NoError(t, g.SetStage("a", "shared"))
	require.NoError(t, g.SetStage("b", "shared"))
	require.NoError(t, g.SetRoot("r"))
	require.NoError(t, g.SetSink("t"))

	c, err := ceg.New(g)
	require.NoError(t, err)
	require.NoError(t, c.Generate())
	require.Equal(t, 3, g.NodeCount())

	// Folded z edges sum to 3; the x and y edges stay parallel into w1.
	z, err := g.Edge("w1", "winf", "z")
	require.NoError(t, err)
	require.Equal(t, 3.0, z.Attrs.Get(core.AttrCount))
	require.True(t, g.HasEdge("w0", "w1", "x"))
	require.True(t, g.HasEdge("w0", "w1", "y"))
}
