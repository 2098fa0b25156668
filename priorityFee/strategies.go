package priorityFee

type AverageStrategy struct{}

func (p *AverageStrategy) Calculate(samples []Sample) uint64 {
	if len(samples) == 0 {
		return 0
	}
	runningSumFees := uint64(0)
	for _, sample := range samples {
		runningSumFees += sample.PrioritizationFee
	}
	return runningSumFees / uint64(len(samples))
}

type MaxStrategy struct{}

func (p *MaxStrategy) Calculate(samples []Sample) uint64 {
	runningMaxFee := uint64(0)
	for _, sample := range samples {
		runningMaxFee = max(runningMaxFee, sample.PrioritizationFee)
	}
	return runningMaxFee
}

// LatestStrategy uses the newest sample only.
type LatestStrategy struct{}

func (p *LatestStrategy) Calculate(samples []Sample) uint64 {
	if len(samples) == 0 {
		return 0
	}
	return samples[0].PrioritizationFee
}
