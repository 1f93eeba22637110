package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

func titleStyle() props.Text {
	return props.Text{Size: 18, Style: fontstyle.Bold}
}

func labelStyle() props.Text {
	return props.Text{Size: 10, Style: fontstyle.Bold}
}

func labelRightStyle() props.Text {
	return props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
}

func bodyStyle() props.Text {
	return props.Text{Size: 10}
}

func bodyRightStyle() props.Text {
	return props.Text{Size: 10, Align: align.Right}
}

func totalLabelStyle() props.Text {
	return props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}
}

func totalValueStyle() props.Text {
	return props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}
}
