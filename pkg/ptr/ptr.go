package ptr

// Ptr возвращает указатель на значение
func Ptr[T any](v T) *T {
	return &v
}

// Value возвращает значение по указателю или нулевое значение для nil
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NonEmpty возвращает указатель на строку или nil, если строка пустая
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
