package aggregate

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/okian/beastscore/internal/adapters/provider"
	"github.com/okian/beastscore/internal/domain/model"
)

// weiExponent shifts wei to ETH.
const weiExponent = -18

// TxStats is what the transaction family derives.
type TxStats struct {
	Count      int
	ActiveDays int
	GasETH     float64

	// Gas is GasETH before the float conversion, exact to the wei.
	Gas decimal.Decimal
}

// DeriveTxStats counts sent transactions, distinct UTC active dates and the
// gas paid by successful sends. Failed sends count but pay no gas here.
func DeriveTxStats(addr model.Address, txs []provider.Transaction) TxStats {
	var (
		stats TxStats
		gas   = decimal.Zero
		days  = make(map[string]struct{})
	)
	for _, tx := range txs {
		sent := tx.From == addr
		if (sent || tx.To == addr) && !tx.Timestamp.IsZero() {
			days[tx.Timestamp.UTC().Format("2006-01-02")] = struct{}{}
		}
		if !sent {
			continue
		}
		stats.Count++
		if !tx.Failed {
			gas = gas.Add(tx.GasUsed.Mul(tx.GasPrice))
		}
	}
	stats.ActiveDays = len(days)
	stats.Gas = gas.Shift(weiExponent)
	stats.GasETH = finiteFloat(stats.Gas)
	return stats
}

// CountMints counts non-spam transfers from the zero address to addr.
func CountMints(addr model.Address, transfers []provider.NFTTransfer) int {
	n := 0
	for _, t := range transfers {
		if t.From == model.ZeroAddress && t.To == addr && !t.Spam {
			n++
		}
	}
	return n
}

// SwapStats returns the swap count and summed USD volume.
func SwapStats(swaps []provider.Swap) (count int, volumeUSD float64) {
	total := decimal.Zero
	for _, s := range swaps {
		total = total.Add(s.ValueUSD)
	}
	return len(swaps), finiteFloat(total)
}

// LiquidityUSD is held plus unclaimed value.
func LiquidityUSD(s provider.PortfolioSummary) float64 {
	return finiteFloat(s.HeldUSD.Add(s.UnclaimedUSD))
}

func finiteFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
