package fanduel

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bkozlov/betsheet/internal/pkg/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestInferResult(t *testing.T) {
	cases := []struct {
		name string
		meta footerMeta
		text string
		want models.Result
	}{
		{
			name: "labeled won beats zero payout",
			meta: footerMeta{hasWon: true, payoutFound: true},
			text: "$0.00 WON ON FANDUEL",
			want: models.ResultWin,
		},
		{
			name: "returned equal to stake is a push",
			meta: footerMeta{
				stake: dec("10.00"), stakeFound: true,
				returned: dec("10.00"), returnedFound: true,
			},
			text: "$10.00 TOTAL WAGER $10.00 RETURNED",
			want: models.ResultPush,
		},
		{
			name: "returned label with nothing back is a loss",
			meta: footerMeta{stake: dec("10.00"), stakeFound: true},
			text: "$10.00 TOTAL WAGER RETURNED",
			want: models.ResultLoss,
		},
		{
			name: "partial refund settles as loss",
			meta: footerMeta{
				stake: dec("10.00"), stakeFound: true,
				returned: dec("4.00"), returnedFound: true,
			},
			text: "$10.00 TOTAL WAGER $4.00 RETURNED",
			want: models.ResultLoss,
		},
		{
			name: "finished with no payout is a loss",
			meta: footerMeta{stake: dec("5.00"), stakeFound: true},
			text: "FINISHED $5.00 TOTAL WAGER",
			want: models.ResultLoss,
		},
		{
			name: "payout above stake is a win",
			meta: footerMeta{
				stake: dec("5.00"), stakeFound: true,
				payout: dec("12.50"), payoutFound: true,
			},
			text: "$5.00 TOTAL WAGER $12.50 PAID",
			want: models.ResultWin,
		},
		{
			name: "no settlement signal stays pending",
			meta: footerMeta{stake: dec("5.00"), stakeFound: true},
			text: "$5.00 TOTAL WAGER",
			want: models.ResultPending,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := inferResult(c.meta, c.text); got != c.want {
				t.Errorf("inferResult() = %v, want %v", got, c.want)
			}
		})
	}
}
