package engine

// Frequency is how often a cashflow item repeats.
type Frequency string

const (
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqOneTime Frequency = "oneTime"
)

func (f Frequency) Validate() error {
	switch f {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqOneTime:
		return nil
	}
	return ErrInvalidFrequency
}

// monthlyValue converts an amount at this frequency into a monthly
// equivalent. One-time items do not contribute to the monthly picture.
func (f Frequency) monthlyValue(amount float64) float64 {
	switch f {
	case FreqDaily:
		return amount * 30
	case FreqWeekly:
		return amount * 4
	case FreqMonthly:
		return amount
	}
	return 0
}

// Income is a recurring or one-off income source.
type Income struct {
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

// NewIncome validates the frequency and coerces invalid amounts to zero.
func NewIncome(name string, amount float64, freq Frequency) (Income, error) {
	if err := freq.Validate(); err != nil {
		return Income{}, err
	}
	return Income{Name: name, Amount: sanitizeAmount(amount), Frequency: freq}, nil
}

func (i Income) MonthlyValue() float64 { return i.Frequency.monthlyValue(i.Amount) }

// Expense is a recurring or one-off expense.
type Expense struct {
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

func NewExpense(name string, amount float64, freq Frequency) (Expense, error) {
	if err := freq.Validate(); err != nil {
		return Expense{}, err
	}
	return Expense{Name: name, Amount: sanitizeAmount(amount), Frequency: freq}, nil
}

func (e Expense) MonthlyValue() float64 { return e.Frequency.monthlyValue(e.Amount) }
