package shell

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/floydwarshall"
	"github.com/katalvlaran/lvroute/graphio"
	"github.com/katalvlaran/lvroute/internal/ctxlog"
	"github.com/katalvlaran/lvroute/traffic"
	"github.com/katalvlaran/lvroute/unionfind"
)

var errUnknown = errors.New("shell: unknown command")

type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int
	run     func(s *Session, ctx context.Context, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"load_graph": {
			usage: "load_graph <filepath.json>", help: "replace the graph with a JSON document",
			minArgs: 1, maxArgs: 1, run: (*Session).loadGraph,
		},
		"add_node": {
			usage: "add_node <id> [x] [y]", help: "add a node or move an existing one",
			minArgs: 1, maxArgs: 3, run: (*Session).addNode,
		},
		"add_edge": {
			usage: "add_edge <from_id> <to_id> <weight>", help: "append a directed edge",
			minArgs: 3, maxArgs: 3, run: (*Session).addEdge,
		},
		"shortest_path": {
			usage: "shortest_path <dijkstra|astar> <start_id> <end_id>", help: "route between two nodes",
			minArgs: 3, maxArgs: 3, run: (*Session).shortestPath,
		},
		"update_edge_weight": {
			usage: "update_edge_weight <from_id> <to_id> <new_weight>", help: "reweight the first matching edge",
			minArgs: 3, maxArgs: 3, run: (*Session).updateEdgeWeight,
		},
		"get_all_pairs_shortest_paths": {
			usage: "get_all_pairs_shortest_paths", help: "print the Floyd-Warshall distance table",
			run: (*Session).allPairs,
		},
		"find_set": {
			usage: "find_set <node_id>", help: "print the representative of a node's set",
			minArgs: 1, maxArgs: 1, run: (*Session).findSet,
		},
		"unite_sets": {
			usage: "unite_sets <node_id1> <node_id2>", help: "merge the sets of two nodes",
			minArgs: 2, maxArgs: 2, run: (*Session).uniteSets,
		},
		"dump_graph_json": {
			usage: "dump_graph_json", help: "print the graph as a JSON document",
			run: (*Session).dumpGraph,
		},
		"simulate_traffic": {
			usage: "simulate_traffic <tick>", help: "apply simulated congestion for a tick",
			minArgs: 1, maxArgs: 1, run: (*Session).simulateTraffic,
		},
		"corridor_load": {
			usage: "corridor_load <from_slot> <to_slot>", help: "sum current weights over an edge slot range",
			minArgs: 2, maxArgs: 2, run: (*Session).corridorLoad,
		},
		"help": {
			usage: "help", help: "show this list",
			run: func(s *Session, _ context.Context, _ []string) error {
				fmt.Fprintln(s.out, usage())
				return nil
			},
		},
		"exit": {
			usage: "exit", help: "leave interactive mode",
			run: func(*Session, context.Context, []string) error { return nil },
		},
	}
}

func usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range names {
		c := commands[name]
		fmt.Fprintf(&b, "  %-52s %s\n", c.usage, c.help)
	}
	b.WriteString("Without a command, routeopt runs in interactive mode.")

	return b.String()
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fail("invalid node id %q", arg)
	}

	return id, nil
}

// parseFloat accepts finite values only; the JSON document cannot hold NaN or ±Inf.
func parseFloat(what, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fail("invalid %s %q", what, arg)
	}

	return v, nil
}

func (s *Session) weight(w float64) string {
	return strconv.FormatFloat(w, 'f', s.cfg.Precision, 64)
}

func (s *Session) loadGraph(ctx context.Context, args []string) error {
	g, err := graphio.Load(args[0])
	if err != nil {
		return fail("could not load graph from %s: %v", args[0], err)
	}

	s.graph = g
	s.sets = unionfind.New(g.NodeIDs()...)
	s.index, s.sim = nil, nil
	ctxlog.FromContext(ctx).Info("Graph loaded.", "path", args[0], "nodes", g.NodeCount(), "edges", g.EdgeCount())
	fmt.Fprintf(s.out, "Graph loaded successfully from %s\n", args[0])

	return nil
}

func (s *Session) addNode(_ context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	var x, y float64
	if len(args) > 1 {
		if x, err = parseFloat("x coordinate", args[1]); err != nil {
			return err
		}
	}
	if len(args) > 2 {
		if y, err = parseFloat("y coordinate", args[2]); err != nil {
			return err
		}
	}

	s.graph.AddNode(id, x, y)
	if s.sets != nil {
		s.sets.MakeSet(id)
	}
	fmt.Fprintf(s.out, "Node %d added.\n", id)

	return nil
}

func (s *Session) addEdge(_ context.Context, args []string) error {
	from, err := parseID(args[0])
	if err != nil {
		return err
	}
	to, err := parseID(args[1])
	if err != nil {
		return err
	}
	w, err := parseFloat("weight", args[2])
	if err != nil {
		return err
	}

	s.graph.AddEdge(from, to, w)
	if s.sets != nil {
		s.sets.MakeSet(from)
		s.sets.MakeSet(to)
	}
	s.index, s.sim = nil, nil
	fmt.Fprintf(s.out, "Edge from %d to %d with weight %g added.\n", from, to, w)

	return nil
}

func (s *Session) shortestPath(ctx context.Context, args []string) error {
	algo := args[0]
	start, err := parseID(args[1])
	if err != nil {
		return err
	}
	end, err := parseID(args[2])
	if err != nil {
		return err
	}

	began := time.Now()
	var (
		path []int
		w    float64
	)
	switch algo {
	case "dijkstra":
		path, w, err = dijkstra.ShortestPath(s.graph, start, end)
	case "astar":
		path, w, err = astar.ShortestPath(s.graph, start, end)
	default:
		return fail("unknown algorithm %s. Use 'dijkstra' or 'astar'.", algo)
	}
	s.metrics.ObserveSolver(algo, began)
	if err != nil {
		return fail("%v", err)
	}
	ctxlog.FromContext(ctx).Debug("Path computed.", "algorithm", algo, "start", start, "end", end, "hops", len(path))

	if len(path) == 0 {
		fmt.Fprintf(s.out, "No path found from %d to %d.\n", start, end)
		return nil
	}
	hops := make([]string, len(path))
	for i, id := range path {
		hops[i] = strconv.Itoa(id)
	}
	fmt.Fprintf(s.out, "Path: %s\nWeight: %s\n", strings.Join(hops, " -> "), s.weight(w))

	return nil
}

func (s *Session) updateEdgeWeight(_ context.Context, args []string) error {
	from, err := parseID(args[0])
	if err != nil {
		return err
	}
	to, err := parseID(args[1])
	if err != nil {
		return err
	}
	w, err := parseFloat("weight", args[2])
	if err != nil {
		return err
	}

	if !s.graph.UpdateEdgeWeight(from, to, w) {
		return fail("edge from %d to %d not found for update.", from, to)
	}
	if s.index != nil {
		if err = s.index.Sync(from, to); err != nil {
			return fail("%v", err)
		}
	}
	fmt.Fprintf(s.out, "Weight of edge from %d to %d updated to %g\n", from, to, w)

	return nil
}

func (s *Session) allPairs(ctx context.Context, _ []string) error {
	began := time.Now()
	res, err := floydwarshall.AllPairsContext(ctx, s.graph)
	s.metrics.ObserveSolver("floyd_warshall", began)
	if err != nil {
		return fail("%v", err)
	}

	fmt.Fprintln(s.out, "All-pairs shortest paths (Floyd-Warshall):")
	ids := res.NodeIDs()
	for _, u := range ids {
		for _, v := range ids {
			d, _ := res.Distance(u, v)
			if math.IsInf(d, 1) {
				fmt.Fprintf(s.out, "From %d to %d: INF\n", u, v)
				continue
			}
			fmt.Fprintf(s.out, "From %d to %d: %s\n", u, v, s.weight(d))
		}
	}

	return nil
}

// requireSets guards the disjoint-set commands, which need a loaded graph.
func (s *Session) requireSets(ids ...int) error {
	if s.sets == nil {
		return fail("graph not loaded, union-find not initialized.")
	}
	for _, id := range ids {
		if !s.graph.HasNode(id) {
			return fail("node %d not found in graph.", id)
		}
	}

	return nil
}

func (s *Session) findSet(_ context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err = s.requireSets(id); err != nil {
		return err
	}
	root, err := s.sets.Find(id)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(s.out, "Set for node %d: %d\n", id, root)

	return nil
}

func (s *Session) uniteSets(_ context.Context, args []string) error {
	a, err := parseID(args[0])
	if err != nil {
		return err
	}
	b, err := parseID(args[1])
	if err != nil {
		return err
	}
	if err = s.requireSets(a, b); err != nil {
		return err
	}
	if err = s.sets.Union(a, b); err != nil {
		return fail("%v", err)
	}

	ra, _ := s.sets.Find(a)
	rb, _ := s.sets.Find(b)
	fmt.Fprintf(s.out, "United sets containing node %d and %d.\n", a, b)
	fmt.Fprintf(s.out, "New set for node %d: %d\n", a, ra)
	fmt.Fprintf(s.out, "New set for node %d: %d\n", b, rb)

	return nil
}

func (s *Session) dumpGraph(_ context.Context, _ []string) error {
	if err := graphio.Encode(s.out, s.graph); err != nil {
		return fail("%v", err)
	}

	return nil
}

// trafficIndex returns the current index, building it and its simulator if
// the topology changed since the last build.
func (s *Session) trafficIndex() *traffic.Index {
	if s.index == nil {
		s.index = traffic.NewIndex(s.graph)
		s.sim = traffic.NewSimulator(s.index,
			traffic.WithSeed(s.cfg.Traffic.Seed),
			traffic.WithAmplitude(s.cfg.Traffic.Amplitude),
			traffic.WithScale(s.cfg.Traffic.Scale),
		)
	}

	return s.index
}

func (s *Session) simulateTraffic(ctx context.Context, args []string) error {
	tick, err := strconv.Atoi(args[0])
	if err != nil {
		return fail("invalid tick %q", args[0])
	}

	idx := s.trafficIndex()
	if err = s.sim.Step(tick); err != nil {
		return fail("%v", err)
	}
	ctxlog.FromContext(ctx).Info("Traffic applied.", "tick", tick, "edges", idx.Len())
	fmt.Fprintf(s.out, "Traffic applied for tick %d across %d edges.\n", tick, idx.Len())

	return nil
}

func (s *Session) corridorLoad(_ context.Context, args []string) error {
	l, err := strconv.Atoi(args[0])
	if err != nil {
		return fail("invalid slot %q", args[0])
	}
	r, err := strconv.Atoi(args[1])
	if err != nil {
		return fail("invalid slot %q", args[1])
	}

	load, err := s.trafficIndex().Load(l, r)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(s.out, "Corridor load [%d, %d]: %s\n", l, r, s.weight(load))

	return nil
}
