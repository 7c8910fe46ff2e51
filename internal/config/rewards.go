package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/edupet/engine/internal/domain"
)

// rewardsFile is the on-disk shape of a reward-table override:
//
//	[thresholds.3]
//	growth_tickets = 1
//
//	[thresholds.5]
//	normal_gacha = 1
type rewardsFile struct {
	Thresholds map[string]domain.RewardBundle `toml:"thresholds"`
}

// LoadRewardThresholds returns the threshold reward table, reading the TOML
// override at path when non-empty, otherwise the built-in defaults.
func LoadRewardThresholds(path string) (map[int]domain.RewardBundle, error) {
	if path == "" {
		return domain.DefaultRewardThresholds(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rewards file %s: %w", path, err)
	}

	var rf rewardsFile
	if err := toml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rewards file %s: %w", path, err)
	}
	if len(rf.Thresholds) == 0 {
		return nil, fmt.Errorf("rewards file %s defines no thresholds", path)
	}

	table := make(map[int]domain.RewardBundle, len(rf.Thresholds))
	for key, bundle := range rf.Thresholds {
		count, err := strconv.Atoi(key)
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("rewards file %s: invalid threshold key %q", path, key)
		}
		if bundle.Empty() {
			return nil, fmt.Errorf("rewards file %s: threshold %d grants nothing", path, count)
		}
		table[count] = bundle
	}

	return table, nil
}
