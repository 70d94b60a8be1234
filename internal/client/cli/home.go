package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/codelog/internal/client/countdown"
)

// Home shows the streak and ticks the time left before it resets in the
// prompt. While posting is blocked it also starts the countdown that keeps
// the prompt's wait message current. Opening it again replaces the previous
// view and its countdowns.
func (a *App) Home(ctx context.Context, _ []string) error {
	scope := a.openHome()
	a.status.Set("")
	a.streak.Set("")

	callCtx, cancel := a.withTimeout(ctx)
	info, wait, err := a.streaks.Status(callCtx)
	cancel()

	if !scope.alive() {
		return nil
	}
	if err != nil {
		return err
	}

	if info.TTL > 0 {
		fmt.Fprintf(a.out, "Streak: %d (longest %d), resets in %s\n",
			info.CurrentStreak, info.LongestStreak, countdown.FormatRemaining(info.TTLDuration()))

		format := streakMessage(info.CurrentStreak)
		a.streak.Set(format(info.TTLDuration()))
		scope.attach(countdown.Start(info.TTLDuration(), a.streak.Set,
			append([]countdown.Option{countdown.WithFormat(format)}, a.countdownOpts...)...))
	} else {
		fmt.Fprintf(a.out, "Streak: %d (longest %d)\n", info.CurrentStreak, info.LongestStreak)
	}

	if wait <= 0 {
		fmt.Fprintln(a.out, "You can post today. Use 'post' to write an entry.")
		return nil
	}

	fmt.Fprintln(a.out, countdown.WaitMessage(wait))
	scope.attach(countdown.Start(wait, a.status.Set, a.countdownOpts...))
	return nil
}

func streakMessage(current int) func(time.Duration) string {
	return func(d time.Duration) string {
		return fmt.Sprintf("streak %d, resets in %s", current, countdown.FormatRemaining(d))
	}
}

// Post asks for a journal entry and publishes it.
func (a *App) Post(ctx context.Context, _ []string) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Write your journey", a.out)
	if err != nil {
		return err
	}
	public, err := getConfirmation(a.reader, "Public?", a.out)
	if err != nil {
		return err
	}

	callCtx, cancel := a.withTimeout(ctx)
	_, err = a.journal.Create(callCtx, title, content, public)
	cancel()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Posted successfully!")
	return a.Home(ctx, nil)
}
