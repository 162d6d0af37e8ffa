package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"localitybay/internal/domain"
	"localitybay/internal/service"
	"localitybay/internal/session"
)

// menuNavigator implementa la redirección al login cambiando de menú.
type menuNavigator struct {
	mu       sync.Mutex
	atLogin  bool
	redirect bool
}

func (n *menuNavigator) AtLogin() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.atLogin
}

func (n *menuNavigator) RedirectToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.redirect = true
}

func (n *menuNavigator) setAtLogin(v bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.atLogin = v
	if v {
		n.redirect = false
	}
}

func (n *menuNavigator) takeRedirect() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	r := n.redirect
	n.redirect = false
	return r
}

type cliApp struct {
	reader    *bufio.Reader
	closed    bool
	session   *session.Session
	navigator *menuNavigator
	auth      *service.AuthService
	meetups   *service.MeetupService
	users     *service.UserService
	ads       *service.AdvertisementService
	templates *service.TemplateService
}

func (a *cliApp) run(ctx context.Context) {
	for {
		if a.navigator.takeRedirect() || a.session.State() == session.Anonymous {
			if !a.loginMenu(ctx) {
				return
			}
			continue
		}
		if !a.mainMenu(ctx) {
			return
		}
	}
}

func (a *cliApp) prompt(label string) string {
	fmt.Print(label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		a.closed = true
	}
	return strings.TrimSpace(line)
}

func (a *cliApp) loginMenu(ctx context.Context) bool {
	a.navigator.setAtLogin(true)
	defer a.navigator.setAtLogin(false)

	for {
		fmt.Println("\n===== LocalityBay =====")
		fmt.Println("[1] Log in")
		fmt.Println("[2] Register")
		fmt.Println("[3] Browse meetups")
		fmt.Println("[Q] Quit")
		choice := strings.ToUpper(a.prompt("Select: "))
		if choice == "" && a.closed {
			return false
		}
		switch choice {
		case "1":
			email := a.prompt("Email: ")
			password := a.prompt("Password: ")
			res, err := a.auth.Login(ctx, domain.LoginInput{Email: email, Password: password})
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Welcome back, %s.\n", displayName(res.User))
			a.printExpiry()
			return true
		case "2":
			name := a.prompt("Name: ")
			email := a.prompt("Email: ")
			password := a.prompt("Password: ")
			city := a.prompt("City (optional): ")
			res, err := a.auth.Register(ctx, domain.RegisterInput{Name: name, Email: email, Password: password, City: city})
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Welcome, %s.\n", displayName(res.User))
			return true
		case "3":
			a.browseMeetups(ctx)
		case "Q":
			return false
		default:
			fmt.Println("Invalid selection.")
		}
	}
}

func (a *cliApp) mainMenu(ctx context.Context) bool {
	fmt.Println("\n===== LocalityBay =====")
	fmt.Println("[1] My profile")
	fmt.Println("[2] Browse meetups")
	fmt.Println("[3] Join meetup")
	fmt.Println("[4] Leave meetup")
	fmt.Println("[5] My meetups")
	fmt.Println("[6] Browse advertisements")
	fmt.Println("[7] Templates (admin)")
	fmt.Println("[8] Find people")
	fmt.Println("[9] Log out")
	fmt.Println("[Q] Quit")

	choice := strings.ToUpper(a.prompt("Select: "))
	if choice == "" && a.closed {
		return false
	}
	switch choice {
	case "1":
		user, err := a.auth.Me(ctx)
		if err != nil {
			fmt.Println(err)
			return true
		}
		fmt.Printf("%s <%s> %s\n", displayName(user), user.Email, user.City)
		if len(user.Interests) > 0 {
			fmt.Printf("Interests: %s\n", strings.Join(user.Interests, ", "))
		}
		a.printExpiry()
	case "2":
		a.browseMeetups(ctx)
	case "3":
		meetup, err := a.meetups.Join(ctx, a.prompt("Meetup ID: "))
		if err != nil {
			fmt.Println(err)
			return true
		}
		fmt.Printf("Joined %q (%d attending).\n", meetup.Title, meetup.AttendeesCount)
	case "4":
		meetup, err := a.meetups.Leave(ctx, a.prompt("Meetup ID: "))
		if err != nil {
			fmt.Println(err)
			return true
		}
		fmt.Printf("Left %q.\n", meetup.Title)
	case "5":
		meetups, err := a.meetups.Mine(ctx)
		if err != nil {
			fmt.Println(err)
			return true
		}
		printMeetups(meetups)
	case "6":
		category := a.prompt("Category (optional): ")
		tags := splitList(a.prompt("Tags, comma separated (optional): "))
		ads, err := a.ads.List(ctx, domain.AdvertisementFilter{Category: category, Tags: tags, Limit: 20})
		if err != nil {
			fmt.Println(err)
			return true
		}
		if len(ads) == 0 {
			fmt.Println("No advertisements found.")
		}
		for _, ad := range ads {
			fmt.Printf("[%s] %s - %.2f (%s)\n", ad.ID, ad.Title, ad.Price, ad.City)
		}
	case "7":
		templates, err := a.templates.List(ctx, domain.TemplateFilter{Limit: 20})
		if err != nil {
			fmt.Println(err)
			return true
		}
		for _, tpl := range templates {
			fmt.Printf("[%s] %s (%s/%s) active=%t\n", tpl.ID, tpl.Name, tpl.Type, tpl.Category, tpl.IsActive)
		}
	case "8":
		interests := splitList(a.prompt("Interests, comma separated (optional): "))
		users, err := a.users.Search(ctx, domain.UserFilter{City: a.prompt("City (optional): "), Interests: interests, Limit: 20})
		if err != nil {
			fmt.Println(err)
			return true
		}
		for _, u := range users {
			fmt.Printf("[%s] %s %s\n", u.ID, displayName(u), u.City)
		}
	case "9":
		if err := a.auth.Logout(ctx); err != nil {
			fmt.Println(err)
			return true
		}
		fmt.Println("Logged out.")
	case "Q":
		return false
	default:
		fmt.Println("Invalid selection.")
	}
	return true
}

func (a *cliApp) browseMeetups(ctx context.Context) {
	city := a.prompt("City (optional): ")
	categories := splitList(a.prompt("Categories, comma separated (optional): "))
	meetups, err := a.meetups.List(ctx, domain.MeetupFilter{City: city, Categories: categories, Limit: 20})
	if err != nil {
		fmt.Println(err)
		return
	}
	printMeetups(meetups)
}

func (a *cliApp) printExpiry() {
	claims, err := a.session.Claims()
	if err != nil || claims.ExpiresAt.IsZero() {
		return
	}
	fmt.Printf("Session valid until %s.\n", claims.ExpiresAt.Local().Format(time.RFC1123))
}

func printMeetups(meetups []domain.Meetup) {
	if len(meetups) == 0 {
		fmt.Println("No meetups found.")
		return
	}
	for _, m := range meetups {
		joined := ""
		if m.IsJoined {
			joined = " (joined)"
		}
		fmt.Printf("[%s] %s - %s, %s%s\n", m.ID, m.Title, m.City, m.StartsAt.Local().Format("Jan 2 15:04"), joined)
	}
}

func displayName(u domain.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
