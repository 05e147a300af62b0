package utils

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}
