package receipt

// ValidationError wraps the field failures collected for one receipt so
// the handler can tell client input errors apart from lookup errors.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid receipt"
	}
	return e.Fields[0].Error()
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Process validates a submitted receipt, scores it, and stores the
// result atomically under a new id.
func (s *Service) Process(r Receipt) (*StoredReceipt, Breakdown, error) {
	if fieldErrs := r.Validate(); fieldErrs != nil {
		return nil, nil, &ValidationError{Fields: fieldErrs}
	}

	points, breakdown := CalculatePoints(r)

	id, err := s.repo.Save(r, points)
	if err != nil {
		return nil, nil, err
	}

	return &StoredReceipt{ID: id, Receipt: r, Points: points}, breakdown, nil
}

// Points returns the score stored for an id, or ErrReceiptNotFound.
func (s *Service) Points(id string) (int, error) {
	stored, err := s.repo.Find(id)
	if err != nil {
		return 0, err
	}
	return stored.Points, nil
}
