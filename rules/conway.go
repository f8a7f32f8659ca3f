package rules

import "github.com/sheikhrachel/go-gol/cell"

/*
NextState applies Conway's Game of Life rules to a cell with the given number of live neighbors.

	alive, neighbors < 2    -> dead (underpopulation)
	alive, neighbors 2 or 3 -> alive
	alive, neighbors > 3    -> dead (overcrowding)
	dead,  neighbors == 3   -> alive (birth)
	dead,  otherwise        -> dead
*/
func NextState(current cell.State, liveNeighbors int) cell.State {
	switch current {
	case cell.Alive:
		if liveNeighbors < 2 || liveNeighbors > 3 {
			return cell.Dead
		}
		return cell.Alive
	default:
		if liveNeighbors == 3 {
			return cell.Alive
		}
		return cell.Dead
	}
}

// ApplyConwayRules is the boolean form of NextState: (alive && neighbors == 2) || neighbors == 3
func ApplyConwayRules(neighbors int, alive bool) bool {
	return NextState(cell.FromBool(alive), neighbors).IsAlive()
}
