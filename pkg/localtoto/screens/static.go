package screens

// Notice is a placeholder screen: a title and a line of text, back only.
type Notice struct {
	ctx   *Context
	title string
	body  string
}

func NewSharing(ctx *Context) *Notice {
	return &Notice{ctx: ctx, title: "SharingTitle", body: "SharingBody"}
}

func NewRentals(ctx *Context) *Notice {
	return &Notice{ctx: ctx, title: "RentalsTitle", body: "RentalsBody"}
}

func NewWallet(ctx *Context) *Notice {
	return &Notice{ctx: ctx, title: "WalletTitle", body: "WalletBody"}
}

func (n *Notice) page() page {
	return page{
		title: n.ctx.t(n.title),
		lines: []string{n.ctx.t(n.body)},
		entries: []entry{
			button(n.ctx.t("Back"), func() { n.ctx.Nav.GoBack() }).disabled(!n.ctx.Nav.CanGoBack()),
		},
	}
}
