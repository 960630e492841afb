package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/errs"
)

// Authenticate проходит шлюз доступа один раз за запуск.
//
// Если задан PASSKEEPER_PASSPHRASE, значение используется без вопросов:
// при первом запуске оно становится паролем доступа, иначе проверяется
// один раз. Без переменной пароль запрашивается через p, неверные
// попытки повторяются без ограничения.
func (a *App) Authenticate(ctx context.Context, p Prompter, out io.Writer) error {
	if a.IsUnlocked() {
		return nil
	}

	first, err := a.gate.IsFirstTime(ctx)
	if err != nil {
		return err
	}

	if env := a.config.Passphrase; env != "" {
		if first {
			return a.Setup(ctx, env, env)
		}
		ok, err := a.Unlock(ctx, env)
		if err != nil {
			return err
		}
		if !ok {
			return access.ErrWrongPassphrase
		}
		return nil
	}

	if first {
		return a.setupInteractive(ctx, p, out)
	}
	return a.unlockInteractive(ctx, p, out)
}

func (a *App) setupInteractive(ctx context.Context, p Prompter, out io.Writer) error {
	fmt.Fprintln(out, "Первый запуск: задайте пароль доступа.")
	for {
		value, err := p.Secret("Новый пароль доступа: ")
		if err != nil {
			return err
		}
		confirm, err := p.Secret("Повторите пароль: ")
		if err != nil {
			return err
		}

		err = a.Setup(ctx, value, confirm)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrValidation) {
			return err
		}
		fmt.Fprintf(out, "%v. Попробуйте еще раз.\n", err)
	}
}

func (a *App) unlockInteractive(ctx context.Context, p Prompter, out io.Writer) error {
	for {
		attempt, err := p.Secret("Пароль доступа: ")
		if err != nil {
			return err
		}

		ok, err := a.Unlock(ctx, attempt)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		a.log.Info("wrong passphrase attempt")
		fmt.Fprintln(out, "Неверный пароль доступа.")
	}
}
