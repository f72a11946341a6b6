package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type CommandSegmentStyle struct {
	Background lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Key        lipgloss.TerminalColor
	Text       lipgloss.TerminalColor
}

// KindColors tint the import kind badges.
type KindColors struct {
	Library   lipgloss.TerminalColor
	Resource  lipgloss.TerminalColor
	Variables lipgloss.TerminalColor
	Default   lipgloss.TerminalColor
}

type Theme struct {
	Name string

	AppFrame       lipgloss.Style
	ModalBorder    lipgloss.Style
	PreviewBorder  lipgloss.Style
	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderValue    lipgloss.Style
	HeaderBrand    lipgloss.Style
	StatusBar      lipgloss.Style
	StatusBarKey   lipgloss.Style
	StatusBarValue lipgloss.Style
	CommandBar     lipgloss.Style
	CommandBarHint lipgloss.Style
	Notification   lipgloss.Style
	Error          lipgloss.Style
	Warning        lipgloss.Style
	Success        lipgloss.Style
	PaneTitle      lipgloss.Style
	PaneDivider    lipgloss.Style

	NavigatorTitle            lipgloss.Style
	NavigatorTitleSelected    lipgloss.Style
	NavigatorSubtitle         lipgloss.Style
	NavigatorSubtitleSelected lipgloss.Style
	NavigatorFolder           lipgloss.Style
	NavigatorBadge            lipgloss.Style
	NavigatorDetailDim        lipgloss.Style

	CheckOn   lipgloss.Style
	CheckOff  lipgloss.Style
	LockBadge lipgloss.Style

	ListItemTitle       lipgloss.Style
	ListItemDescription lipgloss.Style
	ListItemSelected    lipgloss.Style

	KindColors      KindColors
	CommandSegments []CommandSegmentStyle
	CommandDivider  lipgloss.Style
}

func DefaultTheme() Theme {
	accent := lipgloss.Color("#7D56F4")
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#dcd7ff"))

	return Theme{
		Name:          "default",
		AppFrame:      lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#403B59")),
		ModalBorder:   base.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#A78BFA")),
		PreviewBorder: base.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5FB3B3")),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E1FF")).Padding(0, 1),
		HeaderTitle:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		HeaderValue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D1CFF6")),
		HeaderBrand: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1020")).
			Background(lipgloss.Color("#FBC859")).
			Bold(true).
			Padding(0, 1),
		StatusBar:      lipgloss.NewStyle().Foreground(lipgloss.Color("#A6A1BB")).Padding(0, 1),
		StatusBarKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8B39")).Bold(true),
		StatusBarValue: lipgloss.NewStyle().Foreground(lipgloss.Color("#EAEAEA")),
		CommandBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("#C2C0D9")).Padding(0, 1),
		CommandBarHint: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Notification:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E0DEF4")).Background(lipgloss.Color("#433C59")).Padding(0, 1),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6E6E")),
		Warning:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB61E")),
		Success:        lipgloss.NewStyle().Foreground(lipgloss.Color("#6EF17E")),
		PaneTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#A6A1BB")).Bold(true),
		PaneDivider:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3547")),

		NavigatorTitle:            lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E1FF")),
		NavigatorTitleSelected:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FDFBFF")).Background(lipgloss.Color("#3B355D")).Bold(true),
		NavigatorSubtitle:         lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7592")),
		NavigatorSubtitleSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("#C7C2E8")).Background(lipgloss.Color("#3B355D")),
		NavigatorFolder:           lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true),
		NavigatorBadge:            lipgloss.NewStyle().Padding(0, 1),
		NavigatorDetailDim:        lipgloss.NewStyle().Foreground(lipgloss.Color("#5E5A72")),

		CheckOn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6EF17E")).Bold(true),
		CheckOff:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5E5A72")),
		LockBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("#1F1500")).Background(lipgloss.Color("#FFB61E")).Bold(true).Padding(0, 1),

		ListItemTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E1FF")).Padding(0, 0, 0, 2),
		ListItemDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7592")).Padding(0, 0, 0, 2),
		ListItemSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FDFBFF")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(accent).
			Padding(0, 0, 0, 1),

		KindColors: KindColors{
			Library:   lipgloss.Color("#15AABF"),
			Resource:  lipgloss.Color("#33C481"),
			Variables: lipgloss.Color("#FF7A45"),
			Default:   lipgloss.Color("#7D56F4"),
		},
		CommandSegments: []CommandSegmentStyle{
			{
				Background: lipgloss.Color("#2C1E3A"),
				Border:     lipgloss.Color("#7D56F4"),
				Key:        lipgloss.Color("#F6E3FF"),
				Text:       lipgloss.Color("#E5E1FF"),
			},
			{
				Background: lipgloss.Color("#102B33"),
				Border:     lipgloss.Color("#15AABF"),
				Key:        lipgloss.Color("#A7F2FF"),
				Text:       lipgloss.Color("#D6F7FF"),
			},
			{
				Background: lipgloss.Color("#0F2F20"),
				Border:     lipgloss.Color("#33C481"),
				Key:        lipgloss.Color("#C0F5DF"),
				Text:       lipgloss.Color("#D6F9E8"),
			},
		},
		CommandDivider: lipgloss.NewStyle().Foreground(lipgloss.Color("#403B59")).Bold(true),
	}
}

// MonoTheme uses attributes only, for terminals without colour or when
// NO_COLOR is set.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	none := lipgloss.NoColor{}
	return Theme{
		Name:           "mono",
		AppFrame:       plain.BorderStyle(lipgloss.NormalBorder()),
		ModalBorder:    plain.BorderStyle(lipgloss.NormalBorder()),
		PreviewBorder:  plain.BorderStyle(lipgloss.NormalBorder()),
		Header:         plain.Padding(0, 1),
		HeaderTitle:    plain.Bold(true),
		HeaderValue:    plain,
		HeaderBrand:    plain.Bold(true).Reverse(true).Padding(0, 1),
		StatusBar:      plain.Padding(0, 1),
		StatusBarKey:   plain.Bold(true),
		StatusBarValue: plain,
		CommandBar:     plain.Padding(0, 1),
		CommandBarHint: plain.Bold(true),
		Notification:   plain.Reverse(true).Padding(0, 1),
		Error:          plain.Bold(true),
		Warning:        plain.Underline(true),
		Success:        plain,
		PaneTitle:      plain.Bold(true),
		PaneDivider:    plain.Faint(true),

		NavigatorTitle:            plain,
		NavigatorTitleSelected:    plain.Reverse(true),
		NavigatorSubtitle:         plain.Faint(true),
		NavigatorSubtitleSelected: plain.Reverse(true),
		NavigatorFolder:           plain.Bold(true),
		NavigatorBadge:            plain.Padding(0, 1),
		NavigatorDetailDim:        plain.Faint(true),

		CheckOn:   plain.Bold(true),
		CheckOff:  plain.Faint(true),
		LockBadge: plain.Reverse(true).Padding(0, 1),

		ListItemTitle:       plain.Padding(0, 0, 0, 2),
		ListItemDescription: plain.Faint(true).Padding(0, 0, 0, 2),
		ListItemSelected:    plain.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).Padding(0, 0, 0, 1),

		KindColors: KindColors{
			Library:   none,
			Resource:  none,
			Variables: none,
			Default:   none,
		},
		CommandDivider: plain.Faint(true),
	}
}

// ByName returns the named built-in theme, falling back to the default.
func ByName(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "mono") {
		return MonoTheme()
	}
	return DefaultTheme()
}

func (t Theme) CommandSegment(idx int) CommandSegmentStyle {
	if len(t.CommandSegments) == 0 {
		return CommandSegmentStyle{
			Background: lipgloss.NoColor{},
			Border:     lipgloss.NoColor{},
			Key:        lipgloss.NoColor{},
			Text:       lipgloss.NoColor{},
		}
	}
	return t.CommandSegments[idx%len(t.CommandSegments)]
}

// KindColor picks the badge colour for an import keyword.
func (t Theme) KindColor(keyword string) lipgloss.TerminalColor {
	var c lipgloss.TerminalColor
	switch strings.ToLower(keyword) {
	case "library":
		c = t.KindColors.Library
	case "resource":
		c = t.KindColors.Resource
	case "variables":
		c = t.KindColors.Variables
	}
	if c == nil {
		c = t.KindColors.Default
	}
	if c == nil {
		return lipgloss.NoColor{}
	}
	return c
}
