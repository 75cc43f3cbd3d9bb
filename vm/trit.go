package malbolge

// Powers of nine select the five paired-trit digit positions that take part
// in the crazy operation.
var pow9 = [5]cell{1, 9, 81, 729, 6561}

// Result of the crazy operation for one paired-trit digit, indexed
// [y digit][x digit]. Each entry is a base-9 symbol standing for two trits.
var crazyTable = [9][9]cell{
	{4, 3, 3, 1, 0, 0, 1, 0, 0},
	{4, 3, 5, 1, 0, 2, 1, 0, 2},
	{5, 5, 4, 2, 2, 1, 2, 2, 1},
	{4, 3, 3, 1, 0, 0, 7, 6, 6},
	{4, 3, 5, 1, 0, 2, 7, 6, 8},
	{5, 5, 4, 2, 2, 1, 8, 8, 7},
	{7, 6, 6, 7, 6, 6, 4, 3, 3},
	{7, 6, 8, 7, 6, 8, 4, 3, 5},
	{8, 8, 7, 8, 8, 7, 5, 5, 4},
}

// crazyOp combines two cells digit by digit through the table above.
// Total over [0, 59048] x [0, 59048]; callers never pass anything larger.
func crazyOp(x, y cell) cell {
	var sum cell
	for i := 0; i < 5; i++ {
		p := pow9[i]
		sum += crazyTable[y/p%9][x/p%9] * p
	}
	return sum
}

// rotateTrits shifts all ten trits one position toward the low end and
// carries the trit that fell off up to the top. Ten applications restore
// the input.
func rotateTrits(x cell) cell {
	return x/3 + x%3*19683 // 3^9 == 19683
}
