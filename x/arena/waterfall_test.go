package arena

import (
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSplit(t *testing.T) {
	Convey("Given a contribution split between all fee destinations", t, func() {
		rates := FeeRates{Arena: 1000, Topic: 500, Contributor: 1200, Choice: 1000}

		Convey("Every cut is a fraction of the full amount", func() {
			w, err := Split(coin.NewCoin(100, 0, "IOV"), rates)
			So(err, ShouldBeNil)
			So(w.ArenaCut.Equals(coin.NewCoin(10, 0, "IOV")), ShouldBeTrue)
			So(w.TopicCut.Equals(coin.NewCoin(5, 0, "IOV")), ShouldBeTrue)
			So(w.ContributorCut.Equals(coin.NewCoin(12, 0, "IOV")), ShouldBeTrue)
			So(w.ChoiceCut.Equals(coin.NewCoin(10, 0, "IOV")), ShouldBeTrue)
			So(w.Net.Equals(coin.NewCoin(63, 0, "IOV")), ShouldBeTrue)
		})

		Convey("Fractional amounts are split in the smallest unit", func() {
			w, err := Split(coin.NewCoin(1, 500000000, "IOV"), rates)
			So(err, ShouldBeNil)
			So(w.ArenaCut.Equals(coin.NewCoin(0, 150000000, "IOV")), ShouldBeTrue)
			So(w.TopicCut.Equals(coin.NewCoin(0, 75000000, "IOV")), ShouldBeTrue)
			So(w.ContributorCut.Equals(coin.NewCoin(0, 180000000, "IOV")), ShouldBeTrue)
			So(w.ChoiceCut.Equals(coin.NewCoin(0, 150000000, "IOV")), ShouldBeTrue)
			So(w.Net.Equals(coin.NewCoin(0, 945000000, "IOV")), ShouldBeTrue)
		})

		Convey("Rounding leftover is credited to the net amount", func() {
			w, err := Split(coin.NewCoin(0, 9, "IOV"), rates)
			So(err, ShouldBeNil)
			So(w.ArenaCut.IsZero(), ShouldBeTrue)
			So(w.TopicCut.IsZero(), ShouldBeTrue)
			So(w.ContributorCut.Equals(coin.NewCoin(0, 1, "IOV")), ShouldBeTrue)
			So(w.ChoiceCut.IsZero(), ShouldBeTrue)
			So(w.Net.Equals(coin.NewCoin(0, 8, "IOV")), ShouldBeTrue)
		})

		Convey("Folding the contributor cut moves it to the net amount", func() {
			w, err := Split(coin.NewCoin(100, 0, "IOV"), rates)
			So(err, ShouldBeNil)
			w, err = w.FoldContributorCut()
			So(err, ShouldBeNil)
			So(w.ContributorCut.IsZero(), ShouldBeTrue)
			So(w.Net.Equals(coin.NewCoin(75, 0, "IOV")), ShouldBeTrue)
		})
	})

	Convey("Given rates that take more than the whole amount", t, func() {
		rates := FeeRates{Arena: 5000, Topic: 2500, Contributor: 2500, Choice: 1}

		Convey("Split fails", func() {
			_, err := Split(coin.NewCoin(100, 0, "IOV"), rates)
			So(ErrInvalidRate.Is(err), ShouldBeTrue)
		})
	})

	Convey("Given rates that take the whole amount", t, func() {
		rates := FeeRates{Arena: 5000, Topic: 2500, Contributor: 2500}

		Convey("Nothing is left for the contributor", func() {
			w, err := Split(coin.NewCoin(100, 0, "IOV"), rates)
			So(err, ShouldBeNil)
			So(w.Net.IsZero(), ShouldBeTrue)
		})
	})

	Convey("Given a negative amount", t, func() {
		Convey("Split fails", func() {
			_, err := Split(coin.NewCoin(-1, 0, "IOV"), FeeRates{})
			So(errors.ErrAmount.Is(err), ShouldBeTrue)
		})
	})
}

func TestValidateTopicRates(t *testing.T) {
	conf := Configuration{
		ArenaFee:     1000,
		MaxTopicFee:  2000,
		MaxChoiceFee: 3000,
	}

	cases := map[string]struct {
		Msg     CreateTopicMsg
		WantErr *errors.Error
	}{
		"rates within bounds": {
			Msg:     CreateTopicMsg{TopicFee: 2000, MaxChoiceFee: 3000, ContributorFee: 7000, FundingPercentage: MaxRate},
			WantErr: nil,
		},
		"topic fee above arena bound": {
			Msg:     CreateTopicMsg{TopicFee: 2001},
			WantErr: ErrTopicFeeExceeded,
		},
		"topic fee is checked before the choice fee": {
			Msg:     CreateTopicMsg{TopicFee: 2001, MaxChoiceFee: 3001},
			WantErr: ErrTopicFeeExceeded,
		},
		"max choice fee above arena bound": {
			Msg:     CreateTopicMsg{MaxChoiceFee: 3001},
			WantErr: ErrChoiceFeeExceeded,
		},
		"choice fee is checked before the funding percentage": {
			Msg:     CreateTopicMsg{MaxChoiceFee: 3001, FundingPercentage: MaxRate + 1},
			WantErr: ErrChoiceFeeExceeded,
		},
		"funding percentage above 100%": {
			Msg:     CreateTopicMsg{FundingPercentage: MaxRate + 1},
			WantErr: ErrFundingFeeExceeded,
		},
		"funding percentage is checked before the accumulated fees": {
			Msg:     CreateTopicMsg{ContributorFee: 9001, FundingPercentage: MaxRate + 1},
			WantErr: ErrFundingFeeExceeded,
		},
		"accumulated fees above 100%": {
			Msg:     CreateTopicMsg{TopicFee: 2000, ContributorFee: 7001},
			WantErr: ErrAccumulativeFeeExceeded,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := ValidateTopicRates(&conf, &tc.Msg); !tc.WantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.WantErr, err)
			}
		})
	}
}

func TestValidateChoiceRates(t *testing.T) {
	conf := Configuration{ArenaFee: 1000}
	topic := Topic{TopicFee: 2000, ContributorFee: 3000, MaxChoiceFee: 5000}

	cases := map[string]struct {
		Fee     uint32
		WantErr *errors.Error
	}{
		"fee within bounds":             {Fee: 1000, WantErr: nil},
		"fee at the topic bound":        {Fee: 5000, WantErr: ErrAccumulativeFeeExceeded},
		"fee above the topic bound":     {Fee: 5001, WantErr: ErrHighFeePercentage},
		"fee that takes the remainder":  {Fee: 4000, WantErr: nil},
		"fee above the remaining share": {Fee: 4001, WantErr: ErrAccumulativeFeeExceeded},
		"no fee":                        {Fee: 0, WantErr: nil},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := ValidateChoiceRates(&conf, &topic, tc.Fee); !tc.WantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.WantErr, err)
			}
		})
	}
}

// TestCascadingBound checks every combination of rates, each within its
// own ceiling. Creation must fail exactly when the accumulated rates take
// more than the whole contribution.
func TestCascadingBound(t *testing.T) {
	steps := []uint32{0, 1, 2500, 3333, 5000, 6667, 9999, MaxRate}

	for _, arenaFee := range steps {
		conf := Configuration{
			ArenaFee:     arenaFee,
			MaxTopicFee:  MaxRate,
			MaxChoiceFee: MaxRate,
		}
		for _, topicFee := range steps {
			for _, contributorFee := range steps {
				msg := CreateTopicMsg{
					TopicFee:       topicFee,
					MaxChoiceFee:   MaxRate,
					ContributorFee: contributorFee,
				}
				topicTotal := uint64(arenaFee) + uint64(topicFee) + uint64(contributorFee)
				err := ValidateTopicRates(&conf, &msg)
				if topicTotal > MaxRate {
					if !ErrAccumulativeFeeExceeded.Is(err) {
						t.Fatalf("topic %d+%d+%d: want accumulative error, got %+v", arenaFee, topicFee, contributorFee, err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("topic %d+%d+%d: unexpected error: %+v", arenaFee, topicFee, contributorFee, err)
				}

				topic := Topic{
					TopicFee:       topicFee,
					MaxChoiceFee:   MaxRate,
					ContributorFee: contributorFee,
				}
				for _, choiceFee := range steps {
					err := ValidateChoiceRates(&conf, &topic, choiceFee)
					if topicTotal+uint64(choiceFee) > MaxRate {
						if !ErrAccumulativeFeeExceeded.Is(err) {
							t.Fatalf("choice %d+%d: want accumulative error, got %+v", topicTotal, choiceFee, err)
						}
					} else if err != nil {
						t.Fatalf("choice %d+%d: unexpected error: %+v", topicTotal, choiceFee, err)
					}

					// The split must accept every combination that
					// passed the validation.
					if err == nil {
						rates := contributionRates(&conf, &topic, choiceFee)
						if _, err := Split(coin.NewCoin(1, 0, "IOV"), rates); err != nil {
							t.Fatalf("split %+v: %+v", rates, err)
						}
					}
				}
			}
		}
	}
}
