package services

// --- Хелперы для преобразования результатов репозиториев ---

func dereferenceAll[T any](slice []*T) []T {
	if slice == nil {
		return []T{}
	}
	result := make([]T, 0, len(slice))
	for _, ptr := range slice {
		if ptr != nil {
			result = append(result, *ptr)
		}
	}
	return result
}
