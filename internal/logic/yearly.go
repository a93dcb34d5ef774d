package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/programmerrush/api-bills/internal/constants"
	"github.com/programmerrush/api-bills/internal/dao/mongodb"
	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// monthLabels are the fixed output tags, January first.
var monthLabels = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// yearlyWorkers bounds the concurrent per-month store lookups.
const yearlyWorkers = 4

// MonthlyMetrics is one month's entry in a yearly aggregation. Data has the
// exact field set of the requested case whether or not a bill resolved.
type MonthlyMetrics struct {
	Month string      `json:"month"`
	Data  interface{} `json:"data"`
}

// AggregateYear produces twelve metric records, JAN through DEC, for the
// requested case. Months without a bill yield null-filled records; a store
// failure on any month aborts the whole aggregation. The per-month lookups
// run concurrently but the output is always in calendar order.
func (l *BillLogic) AggregateYear(ctx context.Context, companyID primitive.ObjectID, year int, billCase constants.BillCase) ([]MonthlyMetrics, error) {
	if !billCase.Valid() {
		return nil, ErrInvalidCase
	}

	results := make([]MonthlyMetrics, 12)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(yearlyWorkers)

	for month := 1; month <= 12; month++ {
		g.Go(func() error {
			var bill *models.Bill
			found, err := l.billRepo.FindByPeriod(gctx, companyID, year, month)
			switch {
			case err == nil:
				bill = found
			case errors.Is(err, mongodb.ErrNotFound):
				// No bill for this month is a normal outcome, not a failure.
			default:
				return fmt.Errorf("failed to resolve bill for month %d: %w", month, err)
			}

			data, err := ExtractCaseMetrics(bill, billCase)
			if err != nil {
				return err
			}
			results[month-1] = MonthlyMetrics{
				Month: monthLabels[month-1],
				Data:  data,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
