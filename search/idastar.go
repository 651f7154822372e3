package search

import "github.com/katalvlaran/mazepath/grid"

// idaFrame is one explicit-stack entry of the bounded depth-first pass: the
// cell plus the index of the next neighbor to try, so backtracking resumes
// exactly where the frame left off.
type idaFrame struct {
	point   grid.Point
	nextNbr int
}

// idaStar iteratively deepens an f = g + h bound (h = Manhattan distance).
// Each pass is a depth-first probe run on an explicit stack — no recursion,
// so memory stays bounded by the path length even on large grids. Branches
// whose f exceeds the bound are unwound, and the next bound becomes the
// minimum f that exceeded the current one. When a pass exhausts the stack
// without anything exceeding the bound, no path exists and the search
// terminates with the empty result instead of looping.
// Complexity: O(b^d) worst-case time, O(d) memory per pass.
func idaStar(g *grid.Grid, visit visitFunc) ([]grid.Point, error) {
	start, end := g.Start(), g.End()
	bound := start.Manhattan(end)

	for {
		nextBound := -1
		stack := []idaFrame{{point: start}}
		onPath := map[grid.Point]bool{start: true}
		if err := visit(start); err != nil {
			return nil, err
		}

		for len(stack) > 0 {
			top := len(stack) - 1
			cur := stack[top].point

			if stack[top].nextNbr == 0 {
				// First touch of this frame: bound and goal checks.
				f := top + cur.Manhattan(end)
				if f > bound {
					if nextBound < 0 || f < nextBound {
						nextBound = f
					}
					delete(onPath, cur)
					stack = stack[:top]

					continue
				}
				if cur == end {
					path := make([]grid.Point, len(stack))
					for i, fr := range stack {
						path[i] = fr.point
					}

					return path, nil
				}
			}

			nbrs := g.Neighbors(cur)
			advanced := false
			for stack[top].nextNbr < len(nbrs) {
				nbr := nbrs[stack[top].nextNbr]
				stack[top].nextNbr++
				if onPath[nbr] {
					continue
				}
				if err := visit(nbr); err != nil {
					return nil, err
				}
				onPath[nbr] = true
				stack = append(stack, idaFrame{point: nbr})
				advanced = true

				break
			}
			if !advanced {
				// Unwind: this branch is exhausted under the current bound.
				delete(onPath, cur)
				stack = stack[:top]
			}
		}

		if nextBound < 0 {
			return nil, nil // frontier exhausted below the bound: no path
		}
		bound = nextBound
	}
}
