package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE",
		Short: "Open the sites listed in FILE and report the final grid state",
		Long: "replay reads a grid size n followed by whitespace-separated \"row col\" pairs (1-indexed),\n" +
			"opens them in order, and reports open and full sites and whether the grid percolates.\n" +
			"Use - to read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}
}

func runReplay(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	n, sites, err := parseSites(in)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	logger := newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"))
	logger.Info("replaying", slog.Int("size", n), slog.Int("openings", len(sites)))

	grid, err := percolation.New(n)
	if err != nil {
		return err
	}
	for i, s := range sites {
		if err = grid.Open(s[0], s[1]); err != nil {
			return fmt.Errorf("%s: opening #%d: %w", args[0], i+1, err)
		}
	}

	full := 0
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			ok, err := grid.IsFull(row, col)
			if err != nil {
				return err
			}
			if ok {
				full++
			}
		}
	}

	gg, err := gridgraph.From2D(grid.Snapshot(), gridgraph.Conn4)
	if err != nil {
		return err
	}
	_, remaining, err := gg.ExpandToSpan()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "grid: %d×%d (%s sites)\n", n, n, humanize.Comma(int64(n)*int64(n)))
	fmt.Fprintf(w, "open sites: %s\n", humanize.Comma(int64(grid.NumberOfOpenSites())))
	fmt.Fprintf(w, "full sites: %s\n", humanize.Comma(int64(full)))
	fmt.Fprintf(w, "percolates: %t\n", grid.Percolates())
	fmt.Fprintf(w, "sites still needed to percolate: %d\n", remaining)
	return nil
}

// parseSites reads the grid size followed by (row, col) pairs.
// Coordinates are not range-checked here; the grid rejects bad ones.
func parseSites(r io.Reader) (int, [][2]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var nums []int
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, nil, fmt.Errorf("%w: token %q is not an integer", percolation.ErrInvalidArgument, sc.Text())
		}
		nums = append(nums, v)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, err
	}
	if len(nums) == 0 {
		return 0, nil, fmt.Errorf("%w: missing grid size", percolation.ErrInvalidArgument)
	}
	if len(nums)%2 == 0 {
		return 0, nil, fmt.Errorf("%w: dangling row without a column", percolation.ErrInvalidArgument)
	}

	sites := make([][2]int, 0, (len(nums)-1)/2)
	for i := 1; i < len(nums); i += 2 {
		sites = append(sites, [2]int{nums[i], nums[i+1]})
	}
	return nums[0], sites, nil
}
