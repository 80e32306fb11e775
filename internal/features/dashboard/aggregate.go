package dashboard

import (
	"math"
	"sort"

	"studio-admin/internal/features/bugreport"
	"studio-admin/internal/features/member"
	"studio-admin/internal/features/storagestats"
)

// SortReportsForDisplay orders reports by status rank, newest first within a rank.
// The input slice is left untouched.
func SortReportsForDisplay(reports []bugreport.BugReport) []bugreport.BugReport {
	sorted := make([]bugreport.BugReport, len(reports))
	copy(sorted, reports)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Status.Rank(), sorted[j].Status.Rank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// ComputeStats derives the member and storage statistics from one snapshot.
// usage may hold ids of deleted members; only current members are counted.
// Negative or non-finite readings count as zero. A nil storage reading leaves
// Storage unset. Minutes are exact; rounding is left to the dashboard.
func ComputeStats(members []member.Member, usage map[string]float64, storage *storagestats.Storage) Stats {
	stats := Stats{
		TotalMembers:       len(members),
		AccessDistribution: make(map[string]int, len(member.AllFlags)),
		MemberUsage:        make([]MemberUsage, 0, len(members)),
	}

	for _, flag := range member.AllFlags {
		stats.AccessDistribution[string(flag)] = 0
	}

	var totalSeconds float64
	for _, m := range members {
		for _, flag := range member.AllFlags {
			if m.Access.Get(flag) {
				stats.AccessDistribution[string(flag)]++
			}
		}

		seconds := usage[m.ID.Hex()]
		if !isFinite(seconds) || seconds < 0 {
			seconds = 0
		}
		totalSeconds += seconds
		stats.MemberUsage = append(stats.MemberUsage, MemberUsage{
			MemberID: m.ID.Hex(),
			Username: m.Username,
			Seconds:  seconds,
			Minutes:  seconds / 60,
		})
	}

	sort.SliceStable(stats.MemberUsage, func(i, j int) bool {
		a, b := stats.MemberUsage[i], stats.MemberUsage[j]
		if a.Seconds != b.Seconds {
			return a.Seconds > b.Seconds
		}
		return a.Username < b.Username
	})

	stats.TotalUsageMinutes = totalSeconds / 60
	if !isFinite(stats.TotalUsageMinutes) {
		stats.TotalUsageMinutes = 0
	}

	if storage != nil {
		stats.Storage = &StorageSummary{
			UsedStorageKB:  storage.UsedStorageKB,
			UsedStorageMB:  storage.UsedStorageMB,
			TotalStorageMB: storage.TotalStorageMB,
			UsedPercentage: UsedPercentage(storage.UsedStorageMB, storage.TotalStorageMB),
		}
	}

	return stats
}

// UsedPercentage is used/total as a percentage clamped to [0, 100].
// A zero, negative or non-finite total yields 0, as does a NaN reading.
func UsedPercentage(usedMB, totalMB float64) float64 {
	if totalMB <= 0 || !isFinite(totalMB) || math.IsNaN(usedMB) {
		return 0
	}
	return math.Max(0, math.Min(100, usedMB/totalMB*100))
}

// CountStatuses counts reports per status; every known status is present
func CountStatuses(reports []bugreport.BugReport) map[string]int {
	counts := make(map[string]int, len(bugreport.AllStatuses))
	for _, s := range bugreport.AllStatuses {
		counts[string(s)] = 0
	}
	for _, r := range reports {
		counts[string(r.Status)]++
	}
	return counts
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
