package arcstar

import "github.com/okian/arcstar/internal/domain/model"

// 9x9 surfaces centered on the candidate pixel (4, 4).
type grid [9][9]model.Time

var (
	saeAllRays = grid{
		{0, 0, 0, 0, 7, 0, 0, 0, 0},
		{0, 7, 0, 0, 7, 0, 0, 7, 0},
		{0, 0, 7, 0, 0, 0, 7, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{7, 7, 0, 0, 9, 0, 0, 7, 7},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 7, 0, 0, 0, 7, 0, 0},
		{0, 7, 0, 0, 7, 0, 0, 7, 0},
		{0, 0, 0, 0, 7, 0, 0, 0, 0},
	}
	saeBlank = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 9, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeOutsideCornerNe = grid{
		{0, 0, 0, 0, 80, 79, 78, 77, 76},
		{0, 0, 0, 0, 85, 84, 83, 82, 81},
		{0, 0, 0, 0, 90, 89, 88, 87, 86},
		{0, 0, 0, 0, 95, 94, 93, 92, 91},
		{0, 0, 0, 0, 100, 99, 98, 97, 96},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeOutsideCornerSe = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 9, 7, 7, 7, 7},
		{0, 0, 0, 0, 7, 7, 7, 7, 7},
		{0, 0, 0, 0, 7, 7, 7, 7, 7},
		{0, 0, 0, 0, 7, 7, 7, 7, 7},
		{0, 0, 0, 0, 7, 7, 7, 7, 7},
	}
	saeOutsideCornerSw = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 9, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
	}
	saeOutsideCornerNw = grid{
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 9, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeOutsideCornerSse = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 9, 0, 0, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 7, 7, 7, 7, 7, 7, 0},
		{0, 7, 7, 7, 7, 7, 7, 7, 7},
		{0, 0, 7, 7, 7, 7, 7, 7, 7},
	}
	saeInsideCornerNe = grid{
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 9, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
	}
	saeInsideCornerNw = grid{
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
		{0, 0, 0, 0, 9, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
	}
	saeInsideCornerSe = grid{
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 9, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
	}
	saeInsideCornerSw = grid{
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{0, 0, 0, 0, 9, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
	}
	saeInsideCornerN = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{7, 0, 0, 0, 0, 0, 0, 0, 7},
		{7, 7, 0, 0, 0, 0, 0, 7, 7},
		{7, 7, 7, 0, 0, 0, 7, 7, 7},
		{7, 7, 7, 7, 9, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
	}
	saeInsideCornerS = grid{
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 9, 7, 7, 7, 7},
		{7, 7, 7, 0, 0, 0, 7, 7, 7},
		{7, 7, 0, 0, 0, 0, 0, 7, 7},
		{7, 0, 0, 0, 0, 0, 0, 0, 7},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeInsideCornerE = grid{
		{7, 7, 7, 7, 7, 7, 7, 7, 0},
		{7, 7, 7, 7, 7, 7, 7, 0, 0},
		{7, 7, 7, 7, 7, 7, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 9, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 7, 0, 0, 0},
		{7, 7, 7, 7, 7, 7, 7, 0, 0},
		{7, 7, 7, 7, 7, 7, 7, 7, 0},
	}
	saeInsideCornerW = grid{
		{0, 7, 7, 7, 7, 7, 7, 7, 7},
		{0, 0, 7, 7, 7, 7, 7, 7, 7},
		{0, 0, 0, 7, 7, 7, 7, 7, 7},
		{0, 0, 0, 0, 7, 7, 7, 7, 7},
		{0, 0, 0, 0, 9, 7, 7, 7, 7},
		{0, 0, 0, 0, 7, 7, 7, 7, 7},
		{0, 0, 0, 7, 7, 7, 7, 7, 7},
		{0, 0, 7, 7, 7, 7, 7, 7, 7},
		{0, 7, 7, 7, 7, 7, 7, 7, 7},
	}
	saeOutsideCornerN = grid{
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{0, 7, 7, 7, 7, 7, 7, 7, 0},
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 0, 0, 9, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeOutsideCornerS = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 9, 0, 0, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
		{0, 7, 7, 7, 7, 7, 7, 7, 0},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
	}
	saeOutsideCornerE = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 7},
		{0, 0, 0, 0, 0, 0, 0, 7, 7},
		{0, 0, 0, 0, 0, 0, 7, 7, 7},
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
		{0, 0, 0, 0, 9, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 0, 7, 7, 7},
		{0, 0, 0, 0, 0, 0, 0, 7, 7},
		{0, 0, 0, 0, 0, 0, 0, 0, 7},
	}
	saeOutsideCornerW = grid{
		{7, 0, 0, 0, 0, 0, 0, 0, 0},
		{7, 7, 0, 0, 0, 0, 0, 0, 0},
		{7, 7, 7, 0, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 9, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 0, 0, 0, 0, 0, 0},
		{7, 7, 0, 0, 0, 0, 0, 0, 0},
		{7, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeBarVertThick = grid{
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 9, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 0, 0, 0, 0},
	}
	saeBarVertThin = grid{
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 9, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 0, 0, 0, 0, 0},
	}
	saeCenterBarVertThick = grid{
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
		{0, 0, 7, 7, 9, 7, 7, 0, 0},
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
		{0, 0, 7, 7, 7, 7, 7, 0, 0},
	}
	saeCenterBarVertThin = grid{
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 0, 7, 9, 7, 0, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
		{0, 0, 0, 7, 7, 7, 0, 0, 0},
	}
	saeDiagBarVertThin = grid{
		{0, 0, 0, 0, 0, 7, 7, 7, 0},
		{0, 0, 0, 0, 0, 7, 7, 7, 0},
		{0, 0, 0, 0, 7, 7, 7, 0, 0},
		{0, 0, 0, 0, 7, 7, 7, 0, 0},
		{0, 0, 0, 7, 9, 7, 0, 0, 0},
		{0, 0, 7, 7, 7, 0, 0, 0, 0},
		{0, 0, 7, 7, 7, 0, 0, 0, 0},
		{0, 7, 7, 7, 0, 0, 0, 0, 0},
		{0, 7, 7, 7, 0, 0, 0, 0, 0},
	}
	saeDiagBarNeThin = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 3, 0},
		{0, 0, 0, 0, 0, 0, 5, 0, 0},
		{0, 0, 0, 0, 0, 7, 0, 0, 0},
		{0, 0, 0, 0, 9, 0, 0, 0, 0},
		{0, 0, 0, 8, 0, 0, 0, 0, 0},
		{0, 0, 6, 0, 0, 0, 0, 0, 0},
		{0, 4, 0, 0, 0, 0, 0, 0, 0},
		{2, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeBarHorizThin = grid{
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{0, 0, 0, 0, 9, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeBarHorizThick = grid{
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 9, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeCenterBarHorizThin = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 9, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeCenterBarHorizThick = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 9, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7, 7, 7, 7},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeQuarterBlob = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 9, 7, 7, 7, 0},
		{0, 0, 0, 0, 7, 7, 7, 7, 0},
		{0, 0, 0, 0, 7, 7, 7, 0, 0},
		{0, 0, 0, 0, 7, 7, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	saeQuarterBlobHalfRing = grid{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{5, 0, 0, 0, 9, 7, 7, 7, 5},
		{5, 0, 0, 0, 7, 7, 7, 7, 5},
		{0, 5, 0, 0, 7, 7, 7, 5, 0},
		{0, 0, 5, 0, 7, 7, 5, 0, 0},
		{0, 0, 0, 5, 5, 5, 0, 0, 0},
	}
)
