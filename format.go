package aead

// ThroughputKind tags which scaling policy applies to a case's samples.
type ThroughputKind int

const (
	ThroughputBytes ThroughputKind = iota
	ThroughputElements
)

// Throughput annotates a benchmark case with the amount of data one
// timed block processes.
type Throughput struct {
	Kind   ThroughputKind
	Amount float64
}

// Bytes annotates a case as processing n bytes per timed block.
func Bytes(n uint64) Throughput { return Throughput{Kind: ThroughputBytes, Amount: float64(n)} }

// Elements annotates a case as processing n abstract elements per timed block.
func Elements(n uint64) Throughput { return Throughput{Kind: ThroughputElements, Amount: float64(n)} }

// ValueFormatter rescales a batch of raw nanosecond samples in place to
// a consistent display unit and returns that unit's label. The runner
// applies each scaling exactly once per sample batch per reporting pass.
type ValueFormatter interface {
	ScaleValues(typicalNs float64, values []float64) string
	ScaleThroughputs(typicalNs float64, tp Throughput, values []float64) string
	ScaleForMachines(values []float64) string
}

// GbitsFormatter reports byte-denominated throughput in Gbits/s
// regardless of magnitude, and durations in the coarsest unit the
// typical sample reaches.
type GbitsFormatter struct{}

func (GbitsFormatter) ScaleValues(typicalNs float64, values []float64) string {
	var factor float64
	var unit string
	switch {
	case typicalNs < 1:
		factor, unit = 1e3, "ps"
	case typicalNs < 1e3:
		factor, unit = 1, "ns"
	case typicalNs < 1e6:
		factor, unit = 1e-3, "us"
	case typicalNs < 1e9:
		factor, unit = 1e-6, "ms"
	default:
		factor, unit = 1e-9, "s"
	}

	for i := range values {
		values[i] *= factor
	}

	return unit
}

func (f GbitsFormatter) ScaleThroughputs(typicalNs float64, tp Throughput, values []float64) string {
	switch tp.Kind {
	case ThroughputElements:
		return f.elementsPerSecond(tp.Amount, typicalNs, values)
	default:
		return f.gigaBitsPerSecond(tp.Amount, values)
	}
}

// gigaBitsPerSecond converts each per-op nanosecond sample to a
// bits-per-second rate using that sample's own value. A zero sample
// yields +Inf; the rate of a zero-duration op is undefined anyway.
func (GbitsFormatter) gigaBitsPerSecond(bytes float64, values []float64) string {
	const denominator = 1000.0 * 1000.0 * 1000.0

	for i, v := range values {
		bitsPerSecond := bytes * 8 * (1e9 / v)
		values[i] = bitsPerSecond / denominator
	}

	return "Gbits/s"
}

// elementsPerSecond picks a single divisor from the typical sample and
// applies it uniformly, unlike the per-value byte conversion above.
func (GbitsFormatter) elementsPerSecond(elems, typicalNs float64, values []float64) string {
	elemsPerSecond := elems * (1e9 / typicalNs)

	var divisor float64
	var unit string
	switch {
	case elemsPerSecond < 1000.0:
		divisor, unit = 1, " elem/s"
	case elemsPerSecond < 1000.0*1000.0:
		divisor, unit = 1000.0, "Kelem/s"
	case elemsPerSecond < 1000.0*1000.0*1000.0:
		divisor, unit = 1000.0*1000.0, "Melem/s"
	default:
		divisor, unit = 1000.0*1000.0*1000.0, "Gelem/s"
	}

	for i, v := range values {
		values[i] = elems * (1e9 / v) / divisor
	}

	return unit
}

// ScaleForMachines leaves machine-readable output in nanoseconds.
func (GbitsFormatter) ScaleForMachines([]float64) string { return "ns" }
