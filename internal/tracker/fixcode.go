package tracker

import (
	"fmt"

	"github.com/hejijunhao/triage/internal/model"
)

// FixCode generates the code snippet a fix PR would carry, with the
// error's file path interpolated. Unlike the taxonomy fix templates,
// which are static markdown for issue bodies, these are meant to be
// dropped into the affected file.
func (g *Integrator) FixCode(e model.ErrorClassification) string {
	switch e.Kind {
	case model.KindDatabase:
		return fmt.Sprintf(`# Database error fix for %s
# Wraps the failing operation in a transaction with explicit handling.

from django.db import transaction, IntegrityError

try:
    with transaction.atomic():
        # Original database operation here
        pass
except IntegrityError as e:
    logger.error(f"Database integrity error in %s: {e}")
    raise ValidationError("Data integrity constraint violated")
`, e.FilePath, e.FilePath)
	case model.KindAuthentication:
		return fmt.Sprintf(`# Authentication error fix for %s
# Adds explicit authentication checks and a denial response.

from django.contrib.auth.decorators import login_required

@login_required
def your_view(request):
    try:
        # Original view logic here
        pass
    except PermissionDenied as e:
        logger.warning(f"Permission denied in %s: {e}")
        return JsonResponse({'error': 'Access denied'}, status=403)
`, e.FilePath, e.FilePath)
	case model.KindValidation:
		return fmt.Sprintf(`# Validation error fix for %s
# Adds form-level validation with logged failures.

from django import forms

class ImprovedForm(forms.Form):
    def clean(self):
        cleaned_data = super().clean()
        if not cleaned_data.get('required_field'):
            logger.warning(f"Validation failed in %s: missing required field")
            raise forms.ValidationError("Required field is missing")
        return cleaned_data
`, e.FilePath, e.FilePath)
	case model.KindServer:
		return fmt.Sprintf(`# Server error fix for %s
# Guards attribute and key access with logged fallbacks.

def your_view(request):
    try:
        # Original view logic here
        data = getattr(request, 'data', {})
        return render(request, 'template.html', context)
    except (AttributeError, KeyError) as e:
        logger.error(f"Server error in %s: {e}")
        return JsonResponse({'error': 'Internal server error'}, status=500)
`, e.FilePath, e.FilePath)
	case model.KindPerformance:
		return fmt.Sprintf(`# Performance fix for %s
# Adds query optimization and short-lived caching.

from django.core.cache import cache

def optimized_view(request):
    data = cache.get('view_data')
    if data is None:
        queryset = YourModel.objects.select_related('related_field')
        data = list(queryset)
        cache.set('view_data', data, 300)
    return render(request, 'template.html', {'data': data})
`, e.FilePath)
	}
	return fmt.Sprintf(`# Fix for %s
# Adds error handling and logging around the failing operation.

try:
    # Original code here
    pass
except Exception as e:
    logger.error(f"Error in %s: {e}")
    raise
`, e.FilePath, e.FilePath)
}
