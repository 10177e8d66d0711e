package graphql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/xarthos/portfolio-server/internal/auth"
	"github.com/xarthos/portfolio-server/internal/user"
)

// Resolver is the root resolver. Every operation delegates to the auth
// service; structured errors flow to the client as GraphQL extensions.
type Resolver struct {
	auth *auth.Service
}

func NewResolver(service *auth.Service) *Resolver {
	return &Resolver{auth: service}
}

type nameInput struct {
	FirstName  string
	SecondName *string
	LastName   string
}

type avatarInput struct {
	Source *string
}

func (r *Resolver) SignUp(ctx context.Context, args struct {
	Name     nameInput
	Nickname string
	Password string
	Email    string
	Avatar   *avatarInput
}) (*string, error) {
	in := auth.SignUpInput{
		Email:      args.Email,
		Password:   args.Password,
		Nickname:   args.Nickname,
		FirstName:  args.Name.FirstName,
		SecondName: args.Name.SecondName,
		LastName:   args.Name.LastName,
	}
	if args.Avatar != nil {
		in.AvatarSource = args.Avatar.Source
	}

	token, err := r.auth.SignUp(ctx, in, auth.SinkFrom(ctx))
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*string, error) {
	token, err := r.auth.Login(ctx, args.Email, args.Password, auth.SinkFrom(ctx))
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *Resolver) GetCurrentUser(ctx context.Context) *UserResolver {
	return wrapUser(r.auth.CurrentUser(ctx))
}

func (r *Resolver) GetUser(ctx context.Context, args struct{ ID graphql.ID }) (*UserResolver, error) {
	u, err := r.auth.GetUser(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return wrapUser(u), nil
}

type UserResolver struct {
	u *user.User
}

func wrapUser(u *user.User) *UserResolver {
	if u == nil {
		return nil
	}
	return &UserResolver{u: u}
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.u.ID)
}

func (r *UserResolver) Email() *EmailResolver {
	return &EmailResolver{e: r.u.Email}
}

func (r *UserResolver) Nickname() string {
	return r.u.Nickname
}

func (r *UserResolver) Name() *NameResolver {
	return &NameResolver{n: r.u.Name}
}

func (r *UserResolver) CreatedAt() string {
	return r.u.CreatedAt
}

func (r *UserResolver) Type() string {
	return r.u.Type
}

func (r *UserResolver) Avatar() *AvatarResolver {
	return &AvatarResolver{a: r.u.Avatar}
}

type EmailResolver struct {
	e user.Email
}

func (r *EmailResolver) Current() string {
	return r.e.Current
}

func (r *EmailResolver) IsVerified() bool {
	return r.e.IsVerified
}

func (r *EmailResolver) OldEmails() []string {
	return r.e.OldEmails
}

type NameResolver struct {
	n user.Name
}

func (r *NameResolver) FirstName() string {
	return r.n.FirstName
}

func (r *NameResolver) SecondName() *string {
	return r.n.SecondName
}

func (r *NameResolver) LastName() string {
	return r.n.LastName
}

type AvatarResolver struct {
	a user.Avatar
}

func (r *AvatarResolver) Source() *string {
	return r.a.Source
}

func (r *AvatarResolver) BlockAvatar() *BlockAvatarResolver {
	return &BlockAvatarResolver{b: r.a.BlockAvatar}
}

type BlockAvatarResolver struct {
	b user.BlockAvatar
}

func (r *BlockAvatarResolver) Color() string {
	return r.b.Color
}

func (r *BlockAvatarResolver) BgColor() string {
	return r.b.BgColor
}

func (r *BlockAvatarResolver) SpotColor() string {
	return r.b.SpotColor
}
