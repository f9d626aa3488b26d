package aead

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

const (
	maxBarLen = 40
	barBody   = "■"
)

var IsStdoutTerminal = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// Printer renders one table per finished group. Scaling runs once per
// case batch; the printer never re-feeds already scaled values.
type Printer struct {
	config *Config
	out    *os.File
}

func (p *Printer) PrintGroup(name string, results []*CaseResult) {
	buf := &bytes.Buffer{}
	buf.WriteString("\n" + colorize(name, FgGreenColor) + ":\n")

	header := []string{"case", "iters", "typical", "min", "max", "stdev"}
	if p.config.Verbose >= 1 {
		header = append(header, "P50", "P90", "P99", "processed")
	}
	header = append(header, "throughput")

	bulk := [][]string{header}
	for _, r := range results {
		bulk = append(bulk, p.buildRow(r))
	}

	aligns := make([]int, len(header))
	for i := range aligns {
		aligns[i] = AlignRight
	}
	aligns[0] = AlignLeft
	alignBulk(bulk, aligns...)
	writeBulk(buf, bulk)

	if p.config.Verbose >= 2 {
		for _, r := range results {
			buf.WriteString("\n" + r.ID + " histogram:\n")
			writeBulk(buf, buildHistogram(r))
		}
	}

	p.out.Write(buf.Bytes())
}

// buildRow scales the case's duration batch once and its throughput
// batch once, then renders the cells.
func (p *Printer) buildRow(r *CaseResult) []string {
	durs := []float64{r.Typical(), r.stats.Min(), r.stats.Max(), r.stats.Stddev()}
	for _, q := range quantiles {
		durs = append(durs, r.Quantile(q))
	}
	unit := p.config.Formatter.ScaleValues(r.Typical(), durs)

	row := []string{
		r.ID,
		humanize.Comma(int64(r.Iters)),
		fft(durs[0]) + " " + unit,
		fft(durs[1]),
		fft(durs[2]),
		fft(durs[3]),
	}
	if p.config.Verbose >= 1 {
		row = append(row, fft(durs[4]), fft(durs[5]), fft(durs[6]), p.processed(r))
	}

	if r.Throughput == nil {
		return append(row, "-")
	}

	thr := []float64{r.Typical()}
	thrUnit := p.config.Formatter.ScaleThroughputs(r.Typical(), *r.Throughput, thr)
	return append(row, fft(thr[0])+" "+thrUnit)
}

// processed humanizes the total bytes a case pushed through the cipher.
func (p *Printer) processed(r *CaseResult) string {
	if r.Throughput == nil || r.Throughput.Kind != ThroughputBytes {
		return "-"
	}
	total := r.Throughput.Amount * float64(r.Iters) * float64(len(r.Samples))
	return humanize.Bytes(uint64(total))
}

func buildHistogram(r *CaseResult) [][]string {
	bins := r.histogram.Bins()
	hisBulk := make([][]string, 0, len(bins))
	maxCount := 0
	hisSum := 0
	for _, bin := range bins {
		if maxCount < bin.Count {
			maxCount = bin.Count
		}
		hisSum += bin.Count
	}
	for _, bin := range bins {
		row := []string{durationToString(time.Duration(bin.Mean())), strconv.Itoa(bin.Count)}

		barLen := 0
		if maxCount > 0 {
			barLen = (bin.Count*maxBarLen + maxCount/2) / maxCount
		}
		percent := fmt.Sprintf("%.2f%%", math.Floor(float64(bin.Count)*1e4/float64(hisSum)+0.5)/100.0)
		row = append(row, percent, strings.Repeat(barBody, barLen))
		hisBulk = append(hisBulk, row)
	}

	alignBulk(hisBulk, AlignLeft, AlignRight, AlignRight, AlignLeft)
	return hisBulk
}

const (
	FgBlackColor int = iota + 30
	FgRedColor
	FgGreenColor
	FgYellowColor
	FgBlueColor
	FgMagentaColor
	FgCyanColor
	FgWhiteColor
)

func colorize(s string, seq int) string {
	if !IsStdoutTerminal {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", seq, s)
}

func durationToString(d time.Duration) string {
	d = d.Truncate(time.Microsecond)
	return d.String()
}

// fft renders a scaled value with a stable number of decimals.
func fft(v float64) string {
	return formatFloat64(math.Trunc(v*1000) / 1000.0)
}

func formatFloat64(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func alignBulk(bulk [][]string, aligns ...int) {
	maxLen := map[int]int{}
	for _, b := range bulk {
		for i, bb := range b {
			lbb := displayWidth(bb)
			if maxLen[i] < lbb {
				maxLen[i] = lbb
			}
		}
	}
	for _, b := range bulk {
		for i, ali := range aligns {
			if len(b) >= i+1 {
				if i == len(aligns)-1 && ali == AlignLeft {
					continue
				}
				b[i] = padString(b[i], " ", maxLen[i], ali)
			}
		}
	}
}

func writeBulkWith(w *bytes.Buffer, bulk [][]string, lineStart, sep, lineEnd string) {
	for _, b := range bulk {
		w.WriteString(lineStart)
		w.WriteString(b[0])
		for _, bb := range b[1:] {
			w.WriteString(sep)
			w.WriteString(bb)
		}
		w.WriteString(lineEnd)
	}
}

func writeBulk(w *bytes.Buffer, bulk [][]string) {
	writeBulkWith(w, bulk, "  ", "  ", "\n")
}

var ansi = regexp.MustCompile("\033\\[(?:[0-9]{1,3}(?:;[0-9]{1,3})*)?[m|K]")

func displayWidth(str string) int {
	return runewidth.StringWidth(ansi.ReplaceAllLiteralString(str, ""))
}

const (
	AlignLeft = iota
	AlignRight
	AlignCenter
)

func padString(s, pad string, width, align int) string {
	if gap := width - displayWidth(s); gap > 0 {
		switch align {
		case AlignLeft:
			return s + strings.Repeat(pad, gap)
		case AlignRight:
			return strings.Repeat(pad, gap) + s
		case AlignCenter:
			gapLeft := gap / 2
			gapRight := gap - gapLeft
			return strings.Repeat(pad, gapLeft) + s + strings.Repeat(pad, gapRight)
		}
	}
	return s
}
