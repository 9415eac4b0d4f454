// Package common provides layout helpers shared by the UI components.
package common

// LayoutConfig controls how the screen is split between panes.
type LayoutConfig struct {
	// WideBreakpoint is the width (columns) at or above which the desktop
	// layout applies: sidebar on the left, conversation on the right.
	// Below it the mobile layout applies: header, conversation, bottom nav.
	WideBreakpoint int
	// SidebarWidth is the sidebar's column budget in the wide layout.
	SidebarWidth int
	// HeaderHeight and FooterHeight are the narrow layout's chrome rows.
	HeaderHeight int
	FooterHeight int
}

// DefaultLayoutConfig mirrors the built-in configuration defaults.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		WideBreakpoint: 100,
		SidebarWidth:   28,
		HeaderHeight:   1,
		FooterHeight:   2,
	}
}

// ResponsiveLayout computes pane dimensions for the current terminal size.
type ResponsiveLayout struct {
	cfg    LayoutConfig
	width  int
	height int
}

// NewResponsiveLayout creates a layout for the given config.
func NewResponsiveLayout(cfg LayoutConfig) *ResponsiveLayout {
	return &ResponsiveLayout{cfg: cfg, width: 80, height: 24}
}

// UpdateSize records a new terminal size.
func (l *ResponsiveLayout) UpdateSize(width, height int) {
	if width > 0 {
		l.width = width
	}
	if height > 0 {
		l.height = height
	}
}

// Size returns the recorded terminal size.
func (l *ResponsiveLayout) Size() (width, height int) {
	return l.width, l.height
}

// IsWide reports whether the desktop layout applies.
func (l *ResponsiveLayout) IsWide() bool {
	return l.width >= l.cfg.WideBreakpoint
}

// SidebarDimensions returns the sidebar pane size. The sidebar is hidden in
// the narrow layout.
func (l *ResponsiveLayout) SidebarDimensions() (width, height int) {
	if !l.IsWide() {
		return 0, 0
	}
	width = l.cfg.SidebarWidth
	if max := l.width / 3; width > max {
		width = max
	}
	return width, l.height
}

// ContentDimensions returns the conversation pane size.
func (l *ResponsiveLayout) ContentDimensions() (width, height int) {
	if l.IsWide() {
		sw, _ := l.SidebarDimensions()
		return l.width - sw - 1, l.height // 1 column separator
	}
	return l.width, l.height - l.cfg.HeaderHeight - l.cfg.FooterHeight
}

// HeaderDimensions returns the narrow-layout header size (0,0 when wide).
func (l *ResponsiveLayout) HeaderDimensions() (width, height int) {
	if l.IsWide() {
		return 0, 0
	}
	return l.width, l.cfg.HeaderHeight
}

// FooterDimensions returns the narrow-layout bottom-nav size (0,0 when wide).
func (l *ResponsiveLayout) FooterDimensions() (width, height int) {
	if l.IsWide() {
		return 0, 0
	}
	return l.width, l.cfg.FooterHeight
}
